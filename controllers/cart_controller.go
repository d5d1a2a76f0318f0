package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EXROSE/VaricoCare/services"
)

type CartController struct {
	cart    *services.CartService
	catalog *services.CatalogService
}

func NewCartController(cart *services.CartService, catalog *services.CatalogService) *CartController {
	return &CartController{cart: cart, catalog: catalog}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type wishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GetCart returns the current cart and wishlist.
func (cc *CartController) GetCart(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	view, aerr := cc.cart.GetCart(c.Request.Context(), session.UserID)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AddItem resolves the product from the catalog and adds it to the cart.
func (cc *CartController) AddItem(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	product, aerr := cc.catalog.Get(c.Request.Context(), req.ProductID)
	if aerr != nil {
		respondError(c, aerr)
		return
	}

	view, aerr := cc.cart.AddToCart(c.Request.Context(), session.UserID, *product, req.Quantity)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RemoveItem drops a cart line.
func (cc *CartController) RemoveItem(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	view, aerr := cc.cart.RemoveFromCart(c.Request.Context(), session.UserID, c.Param("product_id"))
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateQuantity sets a line quantity; zero or less removes the line.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	view, aerr := cc.cart.UpdateQuantity(c.Request.Context(), session.UserID, c.Param("product_id"), req.Quantity)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ClearCart removes every line.
func (cc *CartController) ClearCart(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	view, aerr := cc.cart.ClearCart(c.Request.Context(), session.UserID)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleWishlist flips the wishlisted state of a product.
func (cc *CartController) ToggleWishlist(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	product, aerr := cc.catalog.Get(c.Request.Context(), req.ProductID)
	if aerr != nil {
		respondError(c, aerr)
		return
	}

	view, aerr := cc.cart.ToggleWishlist(c.Request.Context(), session.UserID, *product)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, view)
}
