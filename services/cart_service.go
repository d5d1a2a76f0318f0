package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/models"
)

// CartService owns the cart and wishlist rules. Quantities are never capped
// against stock; availability is resolved at fulfilment, not in the cart.
type CartService struct {
	carts  database.CartStore
	logger *zap.Logger
}

func NewCartService(carts database.CartStore, logger *zap.Logger) *CartService {
	return &CartService{carts: carts, logger: logger}
}

func (s *CartService) load(ctx context.Context, userID string) (*models.Cart, *apperrors.Error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("user_id", userID), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if cart == nil {
		cart = &models.Cart{
			UserID:   userID,
			Items:    []models.CartItem{},
			Wishlist: []models.Product{},
		}
	}
	return cart, nil
}

func (s *CartService) save(ctx context.Context, cart *models.Cart) *apperrors.Error {
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("user_id", cart.UserID), zap.Error(err))
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

func view(cart *models.Cart, message string, openCart bool) *models.CartView {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	wishlist := cart.Wishlist
	if wishlist == nil {
		wishlist = []models.Product{}
	}
	return &models.CartView{
		Items:      items,
		Wishlist:   wishlist,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
		Message:    message,
		OpenCart:   openCart,
	}
}

// GetCart returns the current cart, creating an empty one in memory when the
// user has none.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.CartView, *apperrors.Error) {
	cart, aerr := s.load(ctx, userID)
	if aerr != nil {
		return nil, aerr
	}
	return view(cart, "", false), nil
}

// AddToCart adds the product with the given quantity. Adding a product that
// is already in the cart increments its line; a new line is placed at the
// front so the latest addition is shown first.
func (s *CartService) AddToCart(ctx context.Context, userID string, product models.Product, quantity int) (*models.CartView, *apperrors.Error) {
	if quantity < 1 {
		quantity = 1
	}

	cart, aerr := s.load(ctx, userID)
	if aerr != nil {
		return nil, aerr
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ID == product.ID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		line := models.CartItem{Product: product, Quantity: quantity}
		cart.Items = append([]models.CartItem{line}, cart.Items...)
	}

	if aerr := s.save(ctx, cart); aerr != nil {
		return nil, aerr
	}
	return view(cart, fmt.Sprintf("%s successfully added to cart!", product.Name), true), nil
}

// RemoveFromCart drops the whole line for the product. Removing a product
// that is not in the cart is a no-op.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID string) (*models.CartView, *apperrors.Error) {
	cart, aerr := s.load(ctx, userID)
	if aerr != nil {
		return nil, aerr
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if aerr := s.save(ctx, cart); aerr != nil {
		return nil, aerr
	}
	return view(cart, "", false), nil
}

// UpdateQuantity sets the line quantity for the product. A quantity of zero
// or less removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*models.CartView, *apperrors.Error) {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, userID, productID)
	}

	cart, aerr := s.load(ctx, userID)
	if aerr != nil {
		return nil, aerr
	}

	for i := range cart.Items {
		if cart.Items[i].ID == productID {
			cart.Items[i].Quantity = quantity
			break
		}
	}

	if aerr := s.save(ctx, cart); aerr != nil {
		return nil, aerr
	}
	return view(cart, "", false), nil
}

// ClearCart removes every line but keeps the wishlist.
func (s *CartService) ClearCart(ctx context.Context, userID string) (*models.CartView, *apperrors.Error) {
	cart, aerr := s.load(ctx, userID)
	if aerr != nil {
		return nil, aerr
	}

	cart.Items = []models.CartItem{}
	if aerr := s.save(ctx, cart); aerr != nil {
		return nil, aerr
	}
	return view(cart, "", false), nil
}

// ToggleWishlist adds the product to the wishlist when absent and removes it
// when present.
func (s *CartService) ToggleWishlist(ctx context.Context, userID string, product models.Product) (*models.CartView, *apperrors.Error) {
	cart, aerr := s.load(ctx, userID)
	if aerr != nil {
		return nil, aerr
	}

	removed := false
	kept := cart.Wishlist[:0]
	for _, p := range cart.Wishlist {
		if p.ID == product.ID {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	cart.Wishlist = kept

	message := "Removed from wishlist"
	if !removed {
		cart.Wishlist = append(cart.Wishlist, product)
		message = "Added to wishlist"
	}

	if aerr := s.save(ctx, cart); aerr != nil {
		return nil, aerr
	}
	return view(cart, message, false), nil
}

// IsInWishlist reports whether the product is wishlisted.
func (s *CartService) IsInWishlist(ctx context.Context, userID, productID string) (bool, *apperrors.Error) {
	cart, aerr := s.load(ctx, userID)
	if aerr != nil {
		return false, aerr
	}
	for _, p := range cart.Wishlist {
		if p.ID == productID {
			return true, nil
		}
	}
	return false, nil
}
