package validation_test

import (
	"testing"
	"time"

	"quickgigs-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleGig struct {
	Title    string    `validate:"required,max=100"`
	Budget   float64   `validate:"required,min=5"`
	Deadline time.Time `validate:"required,future"`
	Category string    `validate:"required,oneof='Web Development' Design Other"`
	PostedBy string    `validate:"required"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestFutureDate(t *testing.T) {
	v := newValidate()

	type deadlineOnly struct {
		Deadline time.Time `validate:"future"`
	}

	assert.NoError(t, v.Struct(deadlineOnly{Deadline: time.Now().Add(time.Hour)}))
	assert.Error(t, v.Struct(deadlineOnly{Deadline: time.Now().Add(-time.Hour)}))
	// Zero values are the required tag's business
	assert.NoError(t, v.Struct(deadlineOnly{}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidate()

	err := v.Struct(sampleGig{})
	require.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	assert.Contains(t, messages, "Title is required")
	assert.Contains(t, messages, "Budget is required")
	assert.Contains(t, messages, "Deadline is required")
	assert.Contains(t, messages, "Category is required")
	assert.Contains(t, messages, "Name of poster is required")
}

func TestMessageOverrides(t *testing.T) {
	v := newValidate()

	err := v.Struct(sampleGig{
		Title:    "ok",
		Budget:   2,
		Deadline: time.Now().Add(-time.Hour),
		Category: "Design",
		PostedBy: "someone",
	})
	require.Error(t, err)

	joined := validation.JoinValidationErrors(err)
	assert.Contains(t, joined, "Budget must be at least $5")
	assert.Contains(t, joined, "Deadline must be a future date")
}

func TestOneOfFormatting(t *testing.T) {
	v := newValidate()

	err := v.Struct(sampleGig{
		Title:    "ok",
		Budget:   10,
		Deadline: time.Now().Add(time.Hour),
		Category: "Cooking",
		PostedBy: "someone",
	})
	require.Error(t, err)

	joined := validation.JoinValidationErrors(err)
	assert.Contains(t, joined, "Category must be one of: Web Development, Design, Other")
}
