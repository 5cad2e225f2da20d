package implementation

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T, matchers ...sqlmock.QueryMatcher) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	var sqlDB *sql.DB
	var mock sqlmock.Sqlmock
	var err error
	switch len(matchers) {
	case 0:
		sqlDB, mock, err = sqlmock.New()
	default:
		sqlDB, mock, err = sqlmock.New(sqlmock.QueryMatcherOption(matchers[len(matchers)-1]))
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

var productColumns = []string{
	"id", "name", "description", "quantity", "unit_price", "price",
	"is_active", "image_url", "category_id", "optlock", "created_time", "updated_time",
}

var categoryColumns = []string{
	"id", "name", "description", "enabled", "category_type", "optlock", "created_time", "updated_time",
}
