package implementation

import (
	"context"
	"errors"
	"time"

	"catalog-be/internal/entity"
	"catalog-be/internal/mapper"
	"catalog-be/internal/model"
	"catalog-be/internal/repository/contract"
	"catalog-be/internal/repository/scope"
	"catalog-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserModelMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserModelMapper(),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	row := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(row)
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	row := r.mapper.ToModel(user)
	now := time.Now()

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND optlock = ?", row.Id, row.Version).
		Updates(map[string]interface{}{
			"email":               row.Email,
			"user_password":       row.PasswordHash,
			"roles":               row.Roles,
			"account_expired":     row.AccountExpired,
			"account_locked":      row.AccountLocked,
			"credentials_expired": row.CredentialsExpired,
			"enabled":             row.Enabled,
			"optlock":             row.Version + 1,
			"updated_time":        now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return staleOrMissing(ctx, r.db, &model.User{}, "user", row.Id, row.Version)
	}

	user.Version = row.Version + 1
	user.UpdatedAt = &now
	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{}).Error
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var row model.User
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&row), nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var rows []*model.User
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByIdAsc), specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(rows), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
