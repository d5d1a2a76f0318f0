package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EXROSE/VaricoCare/models"
	"github.com/EXROSE/VaricoCare/services"
)

// AdminController hosts the management surface: catalog and content CRUD
// plus the store overview. All routes are gated by the admin role.
type AdminController struct {
	catalog   *services.CatalogService
	exercises *services.ExerciseService
	diet      *services.DietService
	orders    *services.OrderService
}

func NewAdminController(
	catalog *services.CatalogService,
	exercises *services.ExerciseService,
	diet *services.DietService,
	orders *services.OrderService,
) *AdminController {
	return &AdminController{
		catalog:   catalog,
		exercises: exercises,
		diet:      diet,
		orders:    orders,
	}
}

// Overview returns the headline numbers for the admin dashboard.
func (ac *AdminController) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	orderCount, revenue, aerr := ac.orders.Stats(ctx)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	products, aerr := ac.catalog.List(ctx, "", "")
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	exercises, aerr := ac.exercises.List(ctx, "")
	if aerr != nil {
		respondError(c, aerr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_orders":    orderCount,
		"total_revenue":   revenue,
		"total_products":  len(products),
		"total_exercises": len(exercises),
	})
}

// Orders returns the paginated history across all users.
func (ac *AdminController) Orders(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	resp, aerr := ac.orders.AllOrders(c.Request.Context(), page, limit)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateProduct adds a product to the catalog.
func (ac *AdminController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	created, aerr := ac.catalog.Create(c.Request.Context(), product)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProduct replaces a product.
func (ac *AdminController) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updated, aerr := ac.catalog.Update(c.Request.Context(), c.Param("id"), product)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProduct removes a product.
func (ac *AdminController) DeleteProduct(c *gin.Context) {
	if aerr := ac.catalog.Delete(c.Request.Context(), c.Param("id")); aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// CreateExercise adds an exercise to the library.
func (ac *AdminController) CreateExercise(c *gin.Context) {
	var exercise models.Exercise
	if err := c.ShouldBindJSON(&exercise); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	created, aerr := ac.exercises.Create(c.Request.Context(), exercise)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateExercise replaces an exercise.
func (ac *AdminController) UpdateExercise(c *gin.Context) {
	var exercise models.Exercise
	if err := c.ShouldBindJSON(&exercise); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updated, aerr := ac.exercises.Update(c.Request.Context(), c.Param("id"), exercise)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteExercise removes an exercise.
func (ac *AdminController) DeleteExercise(c *gin.Context) {
	if aerr := ac.exercises.Delete(c.Request.Context(), c.Param("id")); aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "exercise deleted"})
}

// CreateDietTip adds a curated tip.
func (ac *AdminController) CreateDietTip(c *gin.Context) {
	var tip models.DietTip
	if err := c.ShouldBindJSON(&tip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	created, aerr := ac.diet.CreateTip(c.Request.Context(), tip)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteDietTip removes a curated tip.
func (ac *AdminController) DeleteDietTip(c *gin.Context) {
	if aerr := ac.diet.DeleteTip(c.Request.Context(), c.Param("id")); aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tip deleted"})
}
