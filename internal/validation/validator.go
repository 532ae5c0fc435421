package validation

import (
	"math"
	"strings"

	"github.com/feedback-portal-api/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return e.Message
}

// Errors is a collection of validation errors that itself satisfies error
type Errors []ValidationError

// Error implements the error interface
func (es Errors) Error() string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// OrNil returns the collection as an error, or nil when empty
func (es Errors) OrNil() error {
	if len(es) == 0 {
		return nil
	}
	return es
}

// ValidateCreateComment validates a comment submission
func ValidateCreateComment(req *models.CreateCommentRequest) Errors {
	var errors Errors

	if strings.TrimSpace(req.Text) == "" {
		errors = append(errors, ValidationError{Field: "text", Message: `Field "text" is required`})
	}

	if strings.TrimSpace(req.TopicID) == "" {
		errors = append(errors, ValidationError{Field: "topic_id", Message: `Field "topic_id" is required`})
	}

	return errors
}

// ValidateSentimentUpdate validates a privileged sentiment patch. At least one
// field must be present; present fields must satisfy the enum and range rules.
func ValidateSentimentUpdate(update *models.SentimentUpdate) Errors {
	var errors Errors

	if update.IsEmpty() {
		errors = append(errors, ValidationError{Field: "", Message: "No allowed fields to update"})
		return errors
	}

	if update.SentimentResult != nil && !models.ValidSentimentResults[*update.SentimentResult] {
		errors = append(errors, ValidationError{
			Field:   "sentiment_result",
			Message: "Invalid sentiment_result",
			Value:   *update.SentimentResult,
		})
	}

	if update.SentimentConfidence != nil {
		conf := *update.SentimentConfidence
		if math.IsNaN(conf) || math.IsInf(conf, 0) || conf < 0 || conf > 1 {
			errors = append(errors, ValidationError{
				Field:   "sentiment_confidence",
				Message: "Invalid sentiment_confidence (0..1)",
			})
		}
	}

	return errors
}
