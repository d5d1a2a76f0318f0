package controllers

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EXROSE/VaricoCare/services"
)

// maxUploadBytes bounds lab document uploads (10 MiB).
const maxUploadBytes = 10 << 20

type AnalysisController struct {
	analysis *services.AnalysisService
}

func NewAnalysisController(analysis *services.AnalysisService) *AnalysisController {
	return &AnalysisController{analysis: analysis}
}

type analyzeRequest struct {
	Data     string `json:"data"`
	MimeType string `json:"mime_type"`
	Text     string `json:"text"`
}

// Analyze accepts either a multipart upload under the "file" field or a JSON
// body with base64 data or raw report text.
func (ac *AnalysisController) Analyze(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		ac.analyzeUpload(c)
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if req.Text != "" {
		result, aerr := ac.analysis.AnalyzeText(c.Request.Context(), req.Text)
		if aerr != nil {
			respondError(c, aerr)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	if req.Data == "" || req.MimeType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either text or data with mime_type is required"})
		return
	}

	result, aerr := ac.analysis.AnalyzeDocument(c.Request.Context(), req.Data, req.MimeType)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ac *AnalysisController) analyzeUpload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(raw)
	}

	result, aerr := ac.analysis.AnalyzeDocument(c.Request.Context(), base64.StdEncoding.EncodeToString(raw), mimeType)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, result)
}
