package validation_test

import (
	"testing"

	"github.com/feedback-portal-api/internal/models"
	"github.com/feedback-portal-api/internal/validation"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestValidateCreateComment(t *testing.T) {
	tests := []struct {
		name      string
		req       models.CreateCommentRequest
		wantCount int
		wantField string
	}{
		{
			name:      "valid",
			req:       models.CreateCommentRequest{Text: "Great product", TopicID: "t1"},
			wantCount: 0,
		},
		{
			name:      "valid with author",
			req:       models.CreateCommentRequest{Text: "ok", AuthorName: "Alex", TopicID: "t1"},
			wantCount: 0,
		},
		{
			name:      "empty text",
			req:       models.CreateCommentRequest{Text: "", TopicID: "t1"},
			wantCount: 1,
			wantField: "text",
		},
		{
			name:      "whitespace text",
			req:       models.CreateCommentRequest{Text: "   ", TopicID: "t1"},
			wantCount: 1,
			wantField: "text",
		},
		{
			name:      "empty topic",
			req:       models.CreateCommentRequest{Text: "hello", TopicID: ""},
			wantCount: 1,
			wantField: "topic_id",
		},
		{
			name:      "whitespace topic",
			req:       models.CreateCommentRequest{Text: "hello", TopicID: "  "},
			wantCount: 1,
			wantField: "topic_id",
		},
		{
			name:      "both missing",
			req:       models.CreateCommentRequest{},
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateCreateComment(&tt.req)
			if len(errs) != tt.wantCount {
				t.Fatalf("Expected %d errors, got %d: %v", tt.wantCount, len(errs), errs)
			}
			if tt.wantField != "" && errs[0].Field != tt.wantField {
				t.Errorf("Expected error on field %q, got %q", tt.wantField, errs[0].Field)
			}
		})
	}
}

func TestValidateSentimentUpdate(t *testing.T) {
	tests := []struct {
		name      string
		update    models.SentimentUpdate
		wantValid bool
	}{
		{
			name: "full triple",
			update: models.SentimentUpdate{
				SentimentResult:     strPtr("positive"),
				SentimentConfidence: floatPtr(0.87),
				IsAnalyzed:          boolPtr(true),
			},
			wantValid: true,
		},
		{
			name:      "result only",
			update:    models.SentimentUpdate{SentimentResult: strPtr("neutral")},
			wantValid: true,
		},
		{
			name:      "pending is an allowed result",
			update:    models.SentimentUpdate{SentimentResult: strPtr("pending")},
			wantValid: true,
		},
		{
			name:      "flag only",
			update:    models.SentimentUpdate{IsAnalyzed: boolPtr(false)},
			wantValid: true,
		},
		{
			name:      "confidence boundaries",
			update:    models.SentimentUpdate{SentimentConfidence: floatPtr(1.0)},
			wantValid: true,
		},
		{
			name:      "zero confidence",
			update:    models.SentimentUpdate{SentimentConfidence: floatPtr(0)},
			wantValid: true,
		},
		{
			name:      "no fields",
			update:    models.SentimentUpdate{},
			wantValid: false,
		},
		{
			name:      "unknown result",
			update:    models.SentimentUpdate{SentimentResult: strPtr("ecstatic")},
			wantValid: false,
		},
		{
			name:      "uppercase result",
			update:    models.SentimentUpdate{SentimentResult: strPtr("Positive")},
			wantValid: false,
		},
		{
			name:      "confidence above range",
			update:    models.SentimentUpdate{SentimentConfidence: floatPtr(1.5)},
			wantValid: false,
		},
		{
			name:      "negative confidence",
			update:    models.SentimentUpdate{SentimentConfidence: floatPtr(-0.1)},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateSentimentUpdate(&tt.update)
			if tt.wantValid && len(errs) != 0 {
				t.Errorf("Expected no errors, got %v", errs)
			}
			if !tt.wantValid && len(errs) == 0 {
				t.Error("Expected validation errors, got none")
			}
		})
	}
}

func TestErrors_Error(t *testing.T) {
	errs := validation.Errors{
		{Field: "text", Message: `Field "text" is required`},
		{Field: "topic_id", Message: `Field "topic_id" is required`},
	}

	msg := errs.Error()
	if msg != `Field "text" is required; Field "topic_id" is required` {
		t.Errorf("Unexpected joined message: %q", msg)
	}

	if validation.Errors(nil).OrNil() != nil {
		t.Error("Empty Errors should convert to nil error")
	}
}
