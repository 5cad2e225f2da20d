package service

import (
	"testing"

	"catalog-be/internal/apperror"
	"catalog-be/internal/dto"
	"catalog-be/internal/entity"
	"catalog-be/internal/mapper"
	"catalog-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryService(db *store, pub events.Publisher) ICategoryService {
	return NewCategoryService(&fakeFactory{db: db}, mapper.NewCategoryMapper(mapper.NewProductMapper()), pub, testObserver("CategoryService"))
}

func telephonie() *dto.CategoryDTO {
	return dto.NewCategoryDTOBuilder().
		Name("Téléphonie").
		Description("Téléphones mobiles").
		Enabled(true).
		Type("TELEPHONIE").
		Build()
}

func TestCreateCategoryWithProducts(t *testing.T) {
	db := newStore()
	pub := &recordingPublisher{}
	svc := newCategoryService(db, pub)

	req := telephonie()
	req.Products = []*dto.ProductDTO{galaxy(), galaxy()}

	out, err := svc.Create(asAdmin, req)
	require.NoError(t, err)
	require.NotNil(t, out.Id)

	// duplicates by name collapse into one product
	require.Len(t, out.Products, 1)
	assert.Equal(t, "30.00", out.Products[0].Price)
	assert.Len(t, db.products, 1)
	assert.Equal(t, []string{events.CategorySaved}, pub.types())
}

func TestCreateCategoryAssignsFreshProductIds(t *testing.T) {
	db := newStore()
	svc := newCategoryService(db, nil)
	taken := seedProduct(db, "Nokia 3310", true)

	nested := galaxy()
	nested.Id = &taken
	req := telephonie()
	req.Products = []*dto.ProductDTO{nested}

	out, err := svc.Create(asAdmin, req)
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.NotEqual(t, taken, *out.Products[0].Id)
	assert.Equal(t, "Nokia 3310", db.products[taken].Name)
	assert.Nil(t, db.products[taken].CategoryId)
}

func TestCreateCategoryUnknownType(t *testing.T) {
	db := newStore()
	svc := newCategoryService(db, nil)

	req := telephonie()
	req.Type = "UNKNOWN_TYPE"

	_, err := svc.Create(asAdmin, req)
	require.Error(t, err)
	// rejected by the validate tags before mapping
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Empty(t, db.categories)
}

func TestUpdateCategoryKeepsProducts(t *testing.T) {
	db := newStore()
	svc := newCategoryService(db, nil)

	req := telephonie()
	req.Products = []*dto.ProductDTO{galaxy()}
	created, err := svc.Create(asAdmin, req)
	require.NoError(t, err)

	changed := telephonie()
	changed.Name = "Mobiles"
	changed.Type = "INFORMATIQUE"
	out, err := svc.Update(asModerator, *created.Id, changed)
	require.NoError(t, err)

	assert.Equal(t, "Mobiles", out.Name)
	assert.Equal(t, "INFORMATIQUE", out.Type)
	assert.Len(t, out.Products, 1)
	assert.Equal(t, int64(1), db.categories[*created.Id].Version)
}

func TestUpdateCategoryErrors(t *testing.T) {
	db := newStore()
	svc := newCategoryService(db, nil)

	_, err := svc.Update(asAdmin, 77, telephonie())
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	created, err := svc.Create(asAdmin, telephonie())
	require.NoError(t, err)

	db.staleWrites = true
	_, err = svc.Update(asAdmin, *created.Id, telephonie())
	assert.ErrorIs(t, err, apperror.ErrConcurrentModification)
}

func TestFindCategoryWithProducts(t *testing.T) {
	db := newStore()
	svc := newCategoryService(db, nil)

	req := telephonie()
	req.Products = []*dto.ProductDTO{galaxy()}
	_, err := svc.Create(asAdmin, req)
	require.NoError(t, err)

	plain, err := svc.FindByName(asUser, "Téléphonie")
	require.NoError(t, err)
	assert.Empty(t, plain.Products)

	full, err := svc.FindWithProductsByName(asUser, "Téléphonie")
	require.NoError(t, err)
	require.Len(t, full.Products, 1)
	assert.Equal(t, "Galaxy S21", full.Products[0].Name)

	folded, err := svc.FindByNameIgnoreCase(asUser, "TÉLÉPHONIE")
	require.NoError(t, err)
	assert.Equal(t, "Téléphonie", folded.Name)

	_, err = svc.FindWithProductsByName(asUser, "")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestFindCategoriesByEnabled(t *testing.T) {
	db := newStore()
	svc := newCategoryService(db, nil)

	on := telephonie()
	_, err := svc.Create(asAdmin, on)
	require.NoError(t, err)

	off := telephonie()
	off.Name = "TV"
	off.Type = "TV"
	disabled := false
	off.Enabled = &disabled
	_, err = svc.Create(asAdmin, off)
	require.NoError(t, err)

	res, err := svc.FindAllByEnabled(asUser, false, 0, 10)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	assert.Equal(t, "TV", res.Content[0].Name)
	assert.Equal(t, int64(1), res.TotalElements)
}

func TestDeleteCategoryDetachesProducts(t *testing.T) {
	db := newStore()
	svc := newCategoryService(db, nil)

	req := telephonie()
	req.Products = []*dto.ProductDTO{galaxy()}
	created, err := svc.Create(asAdmin, req)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(asAdmin, *created.Id))
	assert.Empty(t, db.categories)
	require.Len(t, db.products, 1)
	for _, p := range db.products {
		assert.Nil(t, p.CategoryId)
	}

	// second delete is a no-op
	assert.NoError(t, svc.Delete(asAdmin, *created.Id))
}

func TestCategoryExistsByName(t *testing.T) {
	db := newStore()
	svc := newCategoryService(db, nil)
	id := db.id()
	db.categories[*id] = &entity.Category{Id: id, Name: "Son", Type: entity.CategoryTypeSon}

	exists, err := svc.ExistsByName(asUser, "Son")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = svc.ExistsByName(as(), "Son")
	assert.ErrorIs(t, err, apperror.ErrAuthorization)
}
