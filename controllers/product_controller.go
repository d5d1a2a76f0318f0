package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EXROSE/VaricoCare/services"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// List returns the catalog, filtered by ?q= and ?category=.
func (pc *ProductController) List(c *gin.Context) {
	products, aerr := pc.catalog.List(c.Request.Context(), c.Query("q"), c.Query("category"))
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// Get returns one product.
func (pc *ProductController) Get(c *gin.Context) {
	product, aerr := pc.catalog.Get(c.Request.Context(), c.Param("id"))
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, product)
}
