package models_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/feedback-portal-api/internal/models"
)

func TestFlexBool_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    bool
		wantErr bool
	}{
		{name: "native true", payload: `true`, want: true},
		{name: "native false", payload: `false`, want: false},
		{name: "string true", payload: `"true"`, want: true},
		{name: "string TRUE", payload: `"TRUE"`, want: true},
		{name: "string false", payload: `"false"`, want: false},
		{name: "arbitrary string", payload: `"yes"`, want: false},
		{name: "number", payload: `1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b models.FlexBool
			err := json.Unmarshal([]byte(tt.payload), &b)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected unmarshal error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if b.Bool() != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, b.Bool())
			}
		})
	}
}

func TestFlexFloat_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    float64
		wantNaN bool
		wantErr bool
	}{
		{name: "number", payload: `0.87`, want: 0.87},
		{name: "integer", payload: `1`, want: 1},
		{name: "numeric string", payload: `"0.5"`, want: 0.5},
		{name: "non-numeric string", payload: `"high"`, wantNaN: true},
		{name: "object", payload: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f models.FlexFloat
			err := json.Unmarshal([]byte(tt.payload), &f)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected unmarshal error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if tt.wantNaN {
				if !math.IsNaN(f.Float64()) {
					t.Errorf("Expected NaN marker, got %v", f.Float64())
				}
				return
			}
			if f.Float64() != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, f.Float64())
			}
		})
	}
}

func TestSentimentUpdateRequest_ToUpdate(t *testing.T) {
	payload := `{"sentiment_result":"positive","sentiment_confidence":"0.9","is_analyzed":"true"}`

	var req models.SentimentUpdateRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	update := req.ToUpdate()
	if update.SentimentResult == nil || *update.SentimentResult != "positive" {
		t.Errorf("Expected result positive, got %v", update.SentimentResult)
	}
	if update.SentimentConfidence == nil || *update.SentimentConfidence != 0.9 {
		t.Errorf("Expected confidence 0.9, got %v", update.SentimentConfidence)
	}
	if update.IsAnalyzed == nil || !*update.IsAnalyzed {
		t.Errorf("Expected is_analyzed true, got %v", update.IsAnalyzed)
	}
}

func TestSentimentUpdate_IsEmpty(t *testing.T) {
	empty := models.SentimentUpdate{}
	if !empty.IsEmpty() {
		t.Error("Zero-value update should be empty")
	}

	flag := true
	partial := models.SentimentUpdate{IsAnalyzed: &flag}
	if partial.IsEmpty() {
		t.Error("Update with a field should not be empty")
	}
}
