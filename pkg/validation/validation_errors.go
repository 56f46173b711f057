package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Title":          "Title",
	"Description":    "Description",
	"Category":       "Category",
	"Budget":         "Budget",
	"Deadline":       "Deadline",
	"PostedBy":       "Name of poster",
	"FreelancerName": "Freelancer name",
	"ShortMessage":   "Application message",
}

// messageOverrides pins exact messages for field/tag pairs where the generic
// template would drift from the published API wording.
var messageOverrides = map[string]map[string]string{
	"Budget": {
		"min": "Budget must be at least $5",
	},
	"Deadline": {
		"future": "Deadline must be a future date",
	},
	"ShortMessage": {
		"max": "Message cannot be more than 500 characters",
	},
}

// FormatValidationErrors converts validator.ValidationErrors to user-facing
// messages, one per violated field.
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// JoinValidationErrors renders all violations as one display string.
func JoinValidationErrors(err error) string {
	return strings.Join(FormatValidationErrors(err), ", ")
}

func formatSingleError(e validator.FieldError) string {
	fieldName := e.Field()
	label := getFieldLabel(fieldName)
	tag := e.Tag()
	param := e.Param()

	if overrides, ok := messageOverrides[fieldName]; ok {
		if msg, ok := overrides[tag]; ok {
			return msg
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s cannot be more than %s characters", label, param)
		}
		return fmt.Sprintf("%s cannot be more than %s", label, param)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, formatOneOfOptions(param))

	case "future":
		return fmt.Sprintf("%s must be a future date", label)

	default:
		return fmt.Sprintf("%s is invalid (%s)", label, tag)
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

// formatOneOfOptions strips the quoting validator uses for multi-word values
func formatOneOfOptions(param string) string {
	options := splitOneOfParam(param)
	return strings.Join(options, ", ")
}

func splitOneOfParam(param string) []string {
	var options []string
	var current strings.Builder
	inQuote := false
	for _, r := range param {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case r == ' ' && !inQuote:
			if current.Len() > 0 {
				options = append(options, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		options = append(options, current.String())
	}
	return options
}
