package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/middleware"
	"github.com/EXROSE/VaricoCare/models"
)

// respondError writes an application error as JSON with its mapped status.
func respondError(c *gin.Context, aerr *apperrors.Error) {
	body := gin.H{"error": aerr.Message}
	if len(aerr.Fields) > 0 {
		body["fields"] = aerr.Fields
	}
	c.JSON(aerr.Code, body)
}

// mustSession returns the authenticated session or aborts with 401. Routes
// behind the auth middleware always have one; this guards direct handler use.
func mustSession(c *gin.Context) (*models.Session, bool) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return session, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
