package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/models"
)

// memCartStore is an in-memory CartStore for service tests.
type memCartStore struct {
	carts map[string]*models.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[string]*models.Cart)}
}

func (m *memCartStore) GetCart(_ context.Context, userID string) (*models.Cart, error) {
	cart, ok := m.carts[userID]
	if !ok {
		return nil, nil
	}
	cp := *cart
	cp.Items = append([]models.CartItem(nil), cart.Items...)
	cp.Wishlist = append([]models.Product(nil), cart.Wishlist...)
	return &cp, nil
}

func (m *memCartStore) SaveCart(_ context.Context, cart *models.Cart) error {
	m.carts[cart.UserID] = cart
	return nil
}

func (m *memCartStore) DeleteCart(_ context.Context, userID string) error {
	delete(m.carts, userID)
	return nil
}

func herbalBlend() models.Product {
	discount := 39.99
	return models.Product{
		ID:            "1",
		Name:          "VaricoEase Herbal Blend",
		Price:         49.99,
		DiscountPrice: &discount,
		Stock:         50,
	}
}

func zincCarnitine() models.Product {
	return models.Product{
		ID:    "2",
		Name:  "Premium Zinc + L-Carnitine",
		Price: 29.99,
		Stock: 120,
	}
}

func newCartService() *CartService {
	return NewCartService(newMemCartStore(), zap.NewNop())
}

func TestAddToCart_NewLineAndMessage(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	view, aerr := svc.AddToCart(ctx, "u1", herbalBlend(), 1)
	assert.Nil(t, aerr)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.TotalItems)
	assert.True(t, view.OpenCart)
	assert.Equal(t, "VaricoEase Herbal Blend successfully added to cart!", view.Message)
}

func TestAddToCart_DuplicateIncrementsQuantity(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, aerr := svc.AddToCart(ctx, "u1", herbalBlend(), 1)
	assert.Nil(t, aerr)
	view, aerr := svc.AddToCart(ctx, "u1", herbalBlend(), 2)
	assert.Nil(t, aerr)

	assert.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, 3, view.TotalItems)
}

func TestAddToCart_NewestLineFirst(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, aerr := svc.AddToCart(ctx, "u1", herbalBlend(), 1)
	assert.Nil(t, aerr)
	view, aerr := svc.AddToCart(ctx, "u1", zincCarnitine(), 1)
	assert.Nil(t, aerr)

	assert.Equal(t, "2", view.Items[0].ID)
	assert.Equal(t, "1", view.Items[1].ID)
}

func TestCartTotals_UseDiscountPrice(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, aerr := svc.AddToCart(ctx, "u1", herbalBlend(), 2)
	assert.Nil(t, aerr)
	view, aerr := svc.AddToCart(ctx, "u1", zincCarnitine(), 1)
	assert.Nil(t, aerr)

	// 2 x 39.99 (discounted) + 1 x 29.99
	assert.InDelta(t, 109.97, view.TotalPrice, 0.001)
	assert.Equal(t, 3, view.TotalItems)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, aerr := svc.AddToCart(ctx, "u1", herbalBlend(), 2)
	assert.Nil(t, aerr)

	view, aerr := svc.UpdateQuantity(ctx, "u1", "1", 0)
	assert.Nil(t, aerr)
	assert.Empty(t, view.Items)

	view, aerr = svc.UpdateQuantity(ctx, "u1", "1", -3)
	assert.Nil(t, aerr)
	assert.Empty(t, view.Items)
}

func TestUpdateQuantity_SetsExactValue(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, aerr := svc.AddToCart(ctx, "u1", herbalBlend(), 1)
	assert.Nil(t, aerr)

	view, aerr := svc.UpdateQuantity(ctx, "u1", "1", 7)
	assert.Nil(t, aerr)
	assert.Equal(t, 7, view.Items[0].Quantity)
}

func TestRemoveFromCart_AbsentIsNoop(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, aerr := svc.AddToCart(ctx, "u1", herbalBlend(), 1)
	assert.Nil(t, aerr)

	view, aerr := svc.RemoveFromCart(ctx, "u1", "does-not-exist")
	assert.Nil(t, aerr)
	assert.Len(t, view.Items, 1)
}

func TestClearCart_KeepsWishlist(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, aerr := svc.AddToCart(ctx, "u1", herbalBlend(), 1)
	assert.Nil(t, aerr)
	_, aerr = svc.ToggleWishlist(ctx, "u1", zincCarnitine())
	assert.Nil(t, aerr)

	view, aerr := svc.ClearCart(ctx, "u1")
	assert.Nil(t, aerr)
	assert.Empty(t, view.Items)
	assert.Len(t, view.Wishlist, 1)
}

func TestToggleWishlist_SetSemantics(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	view, aerr := svc.ToggleWishlist(ctx, "u1", herbalBlend())
	assert.Nil(t, aerr)
	assert.Len(t, view.Wishlist, 1)
	assert.Equal(t, "Added to wishlist", view.Message)

	in, aerr := svc.IsInWishlist(ctx, "u1", "1")
	assert.Nil(t, aerr)
	assert.True(t, in)

	view, aerr = svc.ToggleWishlist(ctx, "u1", herbalBlend())
	assert.Nil(t, aerr)
	assert.Empty(t, view.Wishlist)
	assert.Equal(t, "Removed from wishlist", view.Message)
}

func TestGetCart_EmptyForNewUser(t *testing.T) {
	svc := newCartService()

	view, aerr := svc.GetCart(context.Background(), "fresh")
	assert.Nil(t, aerr)
	assert.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.TotalPrice)
}
