package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CreateCommentRequest is the JSON body for comment submission
type CreateCommentRequest struct {
	Text       string `json:"text"`
	AuthorName string `json:"author_name"`
	TopicID    string `json:"topic_id"`
}

// SentimentUpdateRequest is the JSON body for the privileged sentiment patch.
// All fields are optional; nil means "leave unchanged". The flexible types
// accept the loose representations the analysis backend is known to send.
type SentimentUpdateRequest struct {
	SentimentResult     *string    `json:"sentiment_result"`
	SentimentConfidence *FlexFloat `json:"sentiment_confidence"`
	IsAnalyzed          *FlexBool  `json:"is_analyzed"`
}

// FlexBool unmarshals from a JSON boolean or a string. Strings other than
// a case-insensitive "true" coerce to false.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var native bool
	if err := json.Unmarshal(data, &native); err == nil {
		*b = FlexBool(native)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = FlexBool(strings.EqualFold(strings.TrimSpace(s), "true"))
		return nil
	}

	return fmt.Errorf("is_analyzed must be a boolean or string")
}

// Bool returns the plain boolean value
func (b FlexBool) Bool() bool {
	return bool(b)
}

// FlexFloat unmarshals from a JSON number or a numeric string.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat(num)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			// Record an out-of-range marker so validation rejects it with the
			// proper field error rather than a JSON parse failure.
			*f = FlexFloat(math.NaN())
			return nil
		}
		*f = FlexFloat(parsed)
		return nil
	}

	return fmt.Errorf("sentiment_confidence must be a number or numeric string")
}

// Float64 returns the plain float value
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// ToUpdate converts the request into a store-level SentimentUpdate
func (r *SentimentUpdateRequest) ToUpdate() *SentimentUpdate {
	update := &SentimentUpdate{
		SentimentResult: r.SentimentResult,
	}
	if r.SentimentConfidence != nil {
		v := r.SentimentConfidence.Float64()
		update.SentimentConfidence = &v
	}
	if r.IsAnalyzed != nil {
		v := r.IsAnalyzed.Bool()
		update.IsAnalyzed = &v
	}
	return update
}
