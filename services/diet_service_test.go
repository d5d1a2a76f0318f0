package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/gemini"
	"github.com/EXROSE/VaricoCare/models"
)

func tipCollection() *database.Collection[models.DietTip] {
	return database.NewCollection(database.NewMemoryKV(), database.KeyDietTips,
		func(t models.DietTip) string { return t.ID }, database.DefaultDietTips)
}

func TestDietTips_CRUD(t *testing.T) {
	svc := NewDietService(tipCollection(), nil, zap.NewNop())
	ctx := context.Background()

	tips, aerr := svc.Tips(ctx)
	assert.Nil(t, aerr)
	assert.Empty(t, tips)

	created, aerr := svc.CreateTip(ctx, models.DietTip{Text: "Stay hydrated", Type: models.DietTipTypeTip})
	assert.Nil(t, aerr)
	assert.NotEmpty(t, created.ID)

	alert, aerr := svc.CreateTip(ctx, models.DietTip{Text: "Avoid prolonged heat", Type: models.DietTipTypeAlert})
	assert.Nil(t, aerr)

	tips, aerr = svc.Tips(ctx)
	assert.Nil(t, aerr)
	assert.Len(t, tips, 2)

	aerr = svc.DeleteTip(ctx, alert.ID)
	assert.Nil(t, aerr)

	aerr = svc.DeleteTip(ctx, "missing")
	assert.Equal(t, apperrors.ErrNotFound, aerr)

	tips, aerr = svc.Tips(ctx)
	assert.Nil(t, aerr)
	assert.Len(t, tips, 1)
	assert.Equal(t, "Stay hydrated", tips[0].Text)
}

func TestCreateTip_Validation(t *testing.T) {
	svc := NewDietService(tipCollection(), nil, zap.NewNop())

	_, aerr := svc.CreateTip(context.Background(), models.DietTip{Text: "   "})
	assert.NotNil(t, aerr)
	assert.Contains(t, aerr.Fields, "text")

	// Unknown types collapse to the plain tip type.
	created, aerr := svc.CreateTip(context.Background(), models.DietTip{Text: "Eat greens", Type: "Banner"})
	assert.Nil(t, aerr)
	assert.Equal(t, models.DietTipTypeTip, created.Type)
}

func TestGeneratePlan_Success(t *testing.T) {
	var got gemini.Request
	client, done := geminiStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(geminiText(`{
			"breakfast": {"name": "Oatmeal with berries", "calories": 350},
			"lunch": {"name": "Grilled salmon salad", "calories": 520},
			"dinner": {"name": "Chicken and quinoa", "calories": 610},
			"snacks": {"name": "Walnuts", "calories": 180},
			"totalCalories": 1660
		}`))
	})
	defer done()

	svc := NewDietService(tipCollection(), client, zap.NewNop())
	plan, aerr := svc.GeneratePlan(context.Background(), models.DietProfile{
		Weight: 80, Age: 31, Grade: 2, Goal: "Improve fertility",
	})
	assert.Nil(t, aerr)
	assert.Equal(t, "Oatmeal with berries", plan.Breakfast.Name)
	assert.InDelta(t, 1660, plan.TotalCalories, 0.001)

	// The profile rides along in the prompt.
	prompt := got.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "varicocele patient")
	assert.Contains(t, prompt, `"goal":"Improve fertility"`)
}

func TestGeneratePlan_GatewayFailure(t *testing.T) {
	client, done := geminiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	defer done()

	svc := NewDietService(tipCollection(), client, zap.NewNop())
	_, aerr := svc.GeneratePlan(context.Background(), models.DietProfile{Weight: 70, Age: 25, Grade: 1, Goal: "x"})
	assert.NotNil(t, aerr)
	assert.Equal(t, http.StatusBadGateway, aerr.Code)
}
