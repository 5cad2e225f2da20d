package implementation

import (
	"context"

	"catalog-be/internal/apperror"
	"catalog-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// staleOrMissing explains an optimistic update that touched no row: either
// the row is gone or its version moved on.
func staleOrMissing(ctx context.Context, db *gorm.DB, table interface{}, resource string, id, version int64) error {
	var count int64
	if err := db.WithContext(ctx).Model(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperror.NewNotFoundError(resource, id)
	}
	return &apperror.ConcurrentModificationError{Resource: resource, Id: id, Version: version}
}
