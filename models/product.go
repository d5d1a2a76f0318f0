package models

import "time"

// Product is a store item managed by the admin surface and read by shoppers.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty"`
	Image         string   `json:"image"`
	Stock         int      `json:"stock"`
	Category      string   `json:"category"`
}

// EffectivePrice returns the discounted price when one is set.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// CartItem is a product snapshot plus a quantity. A cart holds at most one
// line per product id.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is the per-user cart and wishlist, stored as a single JSON blob.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	Wishlist  []Product  `json:"wishlist"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of effective price times quantity over all lines.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.EffectivePrice() * float64(item.Quantity)
	}
	return total
}

// CartView is the cart response shape returned after reads and mutations,
// carrying the derived totals and the transient UI signals.
type CartView struct {
	Items      []CartItem `json:"items"`
	Wishlist   []Product  `json:"wishlist"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
	Message    string     `json:"message,omitempty"`
	OpenCart   bool       `json:"open_cart,omitempty"`
}
