package implementation

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"catalog-be/internal/entity"
	"catalog-be/internal/repository/specification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFindWithProducts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCategoryRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "t_categories" WHERE name = $1`)).
		WillReturnRows(sqlmock.NewRows(categoryColumns).
			AddRow(1, "Téléphonie", "Téléphones", true, "TELEPHONIE", 0, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "t_products" WHERE "t_products"."category_id" = $1`)).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(5, "Galaxy S21", "", 3, "10.00", "30.00", true, nil, 1, 0, now, now))

	c, err := repo.FindOne(context.Background(),
		specification.ByName{Name: "Téléphonie"},
		specification.WithProducts{},
	)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, entity.CategoryTypeTelephonie, c.Type)
	require.Len(t, c.Products, 1)
	assert.Equal(t, "Galaxy S21", c.Products[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryCreateWithProducts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "t_categories"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "t_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))

	c := &entity.Category{
		Name:        "TV",
		Description: "Télévisions",
		Enabled:     true,
		Type:        entity.CategoryTypeTV,
		Products:    []*entity.Product{{Name: "OLED 55", UnitPrice: decimal.NewFromInt(900)}},
	}
	require.NoError(t, repo.Create(context.Background(), c))

	assert.Equal(t, int64(3), *c.Id)
	require.Len(t, c.Products, 1)
	assert.Equal(t, int64(8), *c.Products[0].Id)
	assert.Equal(t, int64(3), *c.Products[0].CategoryId)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// insertWithoutID matches like the default regexp matcher but also fails any
// INSERT whose column list names the primary key.
var insertWithoutID = sqlmock.QueryMatcherFunc(func(expected, actual string) error {
	if err := sqlmock.QueryMatcherRegexp.Match(expected, actual); err != nil {
		return err
	}
	if !strings.HasPrefix(actual, "INSERT INTO") {
		return nil
	}
	open, end := strings.Index(actual, "("), strings.Index(actual, ")")
	if open < 0 || end < open {
		return nil
	}
	if strings.Contains(actual[open:end], `"id"`) {
		return fmt.Errorf("insert carries an explicit id: %s", actual)
	}
	return nil
})

func TestCategoryCreateIgnoresNestedProductIds(t *testing.T) {
	db, mock := setupMockDB(t, insertWithoutID)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "t_categories"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "t_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	existing := int64(500)
	c := &entity.Category{
		Name:    "TV",
		Enabled: true,
		Type:    entity.CategoryTypeTV,
		Products: []*entity.Product{{
			Id:        &existing,
			Name:      "OLED 65",
			UnitPrice: decimal.NewFromInt(1200),
			Version:   4,
		}},
	}
	require.NoError(t, repo.Create(context.Background(), c))

	require.Len(t, c.Products, 1)
	assert.Equal(t, int64(9), *c.Products[0].Id)
	assert.Equal(t, int64(0), c.Products[0].Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryDeleteDetachesProducts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "t_products" SET "category_id"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "t_categories" WHERE id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryEmptyNameMatchesNothing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "t_categories" WHERE 1 = 0`)).
		WillReturnRows(sqlmock.NewRows(categoryColumns))

	c, err := repo.FindOne(context.Background(), specification.ByName{})
	assert.NoError(t, err)
	assert.Nil(t, c)
}
