package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EXROSE/VaricoCare/models"
	"github.com/EXROSE/VaricoCare/services"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// Begin starts (or resumes) the checkout flow.
func (cc *CheckoutController) Begin(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	state, aerr := cc.checkout.Begin(c.Request.Context(), session.UserID)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Current returns the in-progress session, or 404 when there is none.
func (cc *CheckoutController) Current(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	state, aerr := cc.checkout.Current(c.Request.Context(), session.UserID)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	if state == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitDetails validates the form and advances to review.
func (cc *CheckoutController) SubmitDetails(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	var details models.CheckoutDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	state, aerr := cc.checkout.SubmitDetails(c.Request.Context(), session.UserID, details)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Back steps from review to details.
func (cc *CheckoutController) Back(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	state, aerr := cc.checkout.Back(c.Request.Context(), session.UserID)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Confirm authorizes payment and completes the order.
func (cc *CheckoutController) Confirm(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	receipt, aerr := cc.checkout.ConfirmAndPay(c.Request.Context(), session.UserID)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// Receipt returns the receipt for the completed session.
func (cc *CheckoutController) Receipt(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	receipt, aerr := cc.checkout.Receipt(c.Request.Context(), session.UserID)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// Cancel abandons an in-progress flow.
func (cc *CheckoutController) Cancel(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	if aerr := cc.checkout.Cancel(c.Request.Context(), session.UserID); aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "checkout cancelled"})
}
