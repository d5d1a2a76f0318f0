package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/gemini"
	"github.com/EXROSE/VaricoCare/models"
)

// DietService serves the curated nutrition tips and the AI-generated daily
// plan.
type DietService struct {
	tips   *database.Collection[models.DietTip]
	ai     *gemini.Client
	logger *zap.Logger
}

func NewDietService(tips *database.Collection[models.DietTip], ai *gemini.Client, logger *zap.Logger) *DietService {
	return &DietService{tips: tips, ai: ai, logger: logger}
}

// Tips returns the curated tips in authored order.
func (s *DietService) Tips(ctx context.Context) ([]models.DietTip, *apperrors.Error) {
	tips, err := s.tips.All(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return tips, nil
}

// CreateTip adds a tip with a generated id.
func (s *DietService) CreateTip(ctx context.Context, tip models.DietTip) (*models.DietTip, *apperrors.Error) {
	if strings.TrimSpace(tip.Text) == "" {
		return nil, apperrors.Validation(map[string]string{"text": "This field is required"})
	}
	if tip.Type != models.DietTipTypeTip && tip.Type != models.DietTipTypeAlert {
		tip.Type = models.DietTipTypeTip
	}

	tip.ID = uuid.NewString()
	if err := s.tips.Put(ctx, tip); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &tip, nil
}

// DeleteTip removes the tip with the given id.
func (s *DietService) DeleteTip(ctx context.Context, id string) *apperrors.Error {
	if _, err := s.tips.Get(ctx, id); errors.Is(err, database.ErrNotFound) {
		return apperrors.ErrNotFound
	} else if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if err := s.tips.Delete(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

// GeneratePlan asks the model for a personalized daily plan. Any gateway or
// parse failure surfaces as an analysis failure; there is no partial plan.
func (s *DietService) GeneratePlan(ctx context.Context, profile models.DietProfile) (*models.DailyDietPlan, *apperrors.Error) {
	details, err := json.Marshal(profile)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	prompt := fmt.Sprintf("Generate a personalized diet plan for a varicocele patient. User Details: %s", details)
	raw, err := s.ai.GenerateJSON(ctx, []gemini.Part{{Text: prompt}}, dietPlanSchema())
	if err != nil {
		s.logger.Warn("Diet plan generation failed", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrAnalysisFailure, err)
	}

	var plan models.DailyDietPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		s.logger.Warn("Diet plan response is not valid JSON", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrAnalysisFailure, err)
	}
	return &plan, nil
}

func dietPlanSchema() *gemini.Schema {
	meal := &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"name":     {Type: gemini.TypeString},
			"calories": {Type: gemini.TypeNumber},
		},
		Required: []string{"name", "calories"},
	}
	return &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"breakfast":     meal,
			"lunch":         meal,
			"dinner":        meal,
			"snacks":        meal,
			"totalCalories": {Type: gemini.TypeNumber},
		},
		Required: []string{"breakfast", "lunch", "dinner", "snacks", "totalCalories"},
	}
}
