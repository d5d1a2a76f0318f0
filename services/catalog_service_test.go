package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/models"
)

func newCatalogService() *CatalogService {
	col := database.NewCollection(database.NewMemoryKV(), database.KeyProducts,
		func(p models.Product) string { return p.ID }, database.DefaultProducts)
	return NewCatalogService(col, zap.NewNop())
}

func TestCatalogList_SeededDefaults(t *testing.T) {
	svc := newCatalogService()

	products, aerr := svc.List(context.Background(), "", "")
	assert.Nil(t, aerr)
	assert.Len(t, products, 2)
}

func TestCatalogList_SearchAndCategory(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	products, aerr := svc.List(ctx, "zinc", "")
	assert.Nil(t, aerr)
	assert.Len(t, products, 1)
	assert.Equal(t, "Premium Zinc + L-Carnitine", products[0].Name)

	products, aerr = svc.List(ctx, "", "Supplements")
	assert.Nil(t, aerr)
	assert.Len(t, products, 1)
	assert.Equal(t, "VaricoEase Herbal Blend", products[0].Name)

	products, aerr = svc.List(ctx, "zinc", "Supplements")
	assert.Nil(t, aerr)
	assert.Empty(t, products)
}

func TestCatalogCreate_GeneratesID(t *testing.T) {
	svc := newCatalogService()

	created, aerr := svc.Create(context.Background(), models.Product{
		Name: "Maca Root Extract", Price: 19.99, Stock: 30, Category: "Supplements",
	})
	assert.Nil(t, aerr)
	assert.NotEmpty(t, created.ID)

	got, aerr := svc.Get(context.Background(), created.ID)
	assert.Nil(t, aerr)
	assert.Equal(t, "Maca Root Extract", got.Name)
}

func TestCatalogCreate_DiscountMustNotExceedPrice(t *testing.T) {
	svc := newCatalogService()
	discount := 60.0

	_, aerr := svc.Create(context.Background(), models.Product{
		Name: "Overdiscounted", Price: 50, DiscountPrice: &discount,
	})
	assert.NotNil(t, aerr)
	assert.Contains(t, aerr.Fields, "discount_price")
}

func TestCatalogCreate_Validation(t *testing.T) {
	svc := newCatalogService()

	_, aerr := svc.Create(context.Background(), models.Product{Name: " ", Price: 0, Stock: -1})
	assert.NotNil(t, aerr)
	assert.Contains(t, aerr.Fields, "name")
	assert.Contains(t, aerr.Fields, "price")
	assert.Contains(t, aerr.Fields, "stock")
}

func TestCatalogUpdate_KeepsID(t *testing.T) {
	svc := newCatalogService()

	updated, aerr := svc.Update(context.Background(), "1", models.Product{
		ID: "ignored", Name: "VaricoEase v2", Price: 59.99, Stock: 40, Category: "Supplements",
	})
	assert.Nil(t, aerr)
	assert.Equal(t, "1", updated.ID)

	got, aerr := svc.Get(context.Background(), "1")
	assert.Nil(t, aerr)
	assert.Equal(t, "VaricoEase v2", got.Name)
}

func TestCatalogUpdateDelete_UnknownID(t *testing.T) {
	svc := newCatalogService()

	_, aerr := svc.Update(context.Background(), "missing", models.Product{Name: "X", Price: 1})
	assert.Equal(t, apperrors.ErrNotFound, aerr)

	aerr = svc.Delete(context.Background(), "missing")
	assert.Equal(t, apperrors.ErrNotFound, aerr)
}

func TestCatalogDelete(t *testing.T) {
	svc := newCatalogService()

	aerr := svc.Delete(context.Background(), "2")
	assert.Nil(t, aerr)

	_, aerr = svc.Get(context.Background(), "2")
	assert.Equal(t, apperrors.ErrNotFound, aerr)
}
