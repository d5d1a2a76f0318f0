package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EXROSE/VaricoCare/models"
	"github.com/EXROSE/VaricoCare/services"
)

type DietController struct {
	diet *services.DietService
}

func NewDietController(diet *services.DietService) *DietController {
	return &DietController{diet: diet}
}

// Tips returns the curated nutrition tips.
func (dc *DietController) Tips(c *gin.Context) {
	tips, aerr := dc.diet.Tips(c.Request.Context())
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

// GeneratePlan produces a personalized daily plan from the profile form.
func (dc *DietController) GeneratePlan(c *gin.Context) {
	var profile models.DietProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	plan, aerr := dc.diet.GeneratePlan(c.Request.Context(), profile)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, plan)
}
