package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EXROSE/VaricoCare/services"
)

type ExerciseController struct {
	exercises *services.ExerciseService
}

func NewExerciseController(exercises *services.ExerciseService) *ExerciseController {
	return &ExerciseController{exercises: exercises}
}

// List returns the workout library, filtered by ?category=.
func (ec *ExerciseController) List(c *gin.Context) {
	exercises, aerr := ec.exercises.List(c.Request.Context(), c.Query("category"))
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}

// Get returns one exercise plus the derived session timer length.
func (ec *ExerciseController) Get(c *gin.Context) {
	exercise, aerr := ec.exercises.Get(c.Request.Context(), c.Param("id"))
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"exercise":        exercise,
		"session_seconds": services.SessionSeconds(exercise.Duration),
	})
}

// Complete records a finished guided session.
func (ec *ExerciseController) Complete(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	progress, aerr := ec.exercises.Complete(c.Request.Context(), session.UserID, c.Param("id"))
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// Progress returns the user's completion history and streak.
func (ec *ExerciseController) Progress(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}

	progress, aerr := ec.exercises.Progress(c.Request.Context(), session.UserID)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, progress)
}
