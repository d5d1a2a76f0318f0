package services

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/gemini"
	"github.com/EXROSE/VaricoCare/models"
)

const labPrompt = `TASK: Act as a clinical lab specialist.
1. Analyze the provided medical document (image or text).
2. Identify if this is a Semen Analysis, Testosterone Report, or Scrotal Ultrasound.
3. CRITICAL: If the document is NOT a medical lab report related to these three areas, set "isValid" to false.
4. If it IS valid, set "isValid" to true, identify the "detectedType", and extract clinical data into the required JSON structure.

CONTEXT: The patient has a varicocele. Focus on markers like sperm count, motility, morphology, testosterone levels, and vein diameter (mm).`

// AnalysisService runs uploaded lab documents through the AI gateway and
// enforces the validity gate on the verdict.
type AnalysisService struct {
	ai     *gemini.Client
	logger *zap.Logger
}

func NewAnalysisService(ai *gemini.Client, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{ai: ai, logger: logger}
}

// AnalyzeDocument analyzes a base64-encoded document. The data may carry a
// data-URL prefix, which is stripped before sending.
func (s *AnalysisService) AnalyzeDocument(ctx context.Context, data, mimeType string) (*models.LabAnalysisResult, *apperrors.Error) {
	if strings.TrimSpace(data) == "" {
		return nil, apperrors.New(400, "No document provided", nil)
	}
	if idx := strings.Index(data, ","); idx >= 0 && strings.HasPrefix(data, "data:") {
		data = data[idx+1:]
	}

	parts := []gemini.Part{
		{InlineData: &gemini.InlineData{MimeType: mimeType, Data: data}},
		{Text: labPrompt},
	}
	return s.analyze(ctx, parts)
}

// AnalyzeText analyzes pasted report text.
func (s *AnalysisService) AnalyzeText(ctx context.Context, text string) (*models.LabAnalysisResult, *apperrors.Error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.New(400, "No report text provided", nil)
	}

	parts := []gemini.Part{
		{Text: text},
		{Text: labPrompt},
	}
	return s.analyze(ctx, parts)
}

// analyze runs the gateway call and applies the hard validity gate: when the
// model says the upload is not a recognized report, none of the clinical
// fields leave this function.
func (s *AnalysisService) analyze(ctx context.Context, parts []gemini.Part) (*models.LabAnalysisResult, *apperrors.Error) {
	raw, err := s.ai.GenerateJSON(ctx, parts, labReportSchema())
	if err != nil {
		s.logger.Warn("Lab analysis failed", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrAnalysisFailure, err)
	}

	var result models.LabAnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		s.logger.Warn("Lab analysis response is not valid JSON", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrAnalysisFailure, err)
	}

	if !result.IsValid {
		s.logger.Info("Uploaded document rejected as non-medical")
		return nil, apperrors.ErrInvalidDocument
	}

	if result.ImprovementPlan == nil {
		result.ImprovementPlan = []string{}
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}
	return &result, nil
}

func labReportSchema() *gemini.Schema {
	return &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"isValid":      {Type: gemini.TypeBoolean, Description: "Whether the document is a valid medical lab report."},
			"detectedType": {Type: gemini.TypeString, Description: "Type of report detected (e.g., 'Semen Analysis')."},
			"riskScore":    {Type: gemini.TypeNumber, Description: "Fertility risk score 1-10."},
			"summary":      {Type: gemini.TypeString, Description: "Plain English breakdown."},
			"improvementPlan": {
				Type:        gemini.TypeArray,
				Items:       &gemini.Schema{Type: gemini.TypeString},
				Description: "Clinical next steps.",
			},
			"fertilityStatus": {Type: gemini.TypeString},
			"suggestions": {
				Type:  gemini.TypeArray,
				Items: &gemini.Schema{Type: gemini.TypeString},
			},
		},
		Required: []string{"isValid"},
	}
}
