package models

import (
	"time"
)

// Sentiment results a comment may carry. New comments always start as pending.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
	SentimentPending  = "pending"
)

// ValidSentimentResults defines allowed sentiment_result values
var ValidSentimentResults = map[string]bool{
	SentimentPositive: true,
	SentimentNeutral:  true,
	SentimentNegative: true,
	SentimentPending:  true,
}

// Comment represents a user-submitted comment on a topic.
// AuthorName is nil for anonymous submissions; consumers render "Anonymous".
type Comment struct {
	ID                  int64     `json:"id" db:"id"`
	Text                string    `json:"text" db:"text"`
	AuthorName          *string   `json:"author_name" db:"author_name"`
	TopicID             string    `json:"topic_id" db:"topic_id"`
	SentimentResult     string    `json:"sentiment_result" db:"sentiment_result"`
	SentimentConfidence float64   `json:"sentiment_confidence" db:"sentiment_confidence"`
	IsAnalyzed          bool      `json:"is_analyzed" db:"is_analyzed"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}

// SentimentUpdate carries the fields of a partial sentiment patch.
// Nil fields are left untouched by the store.
type SentimentUpdate struct {
	SentimentResult     *string
	SentimentConfidence *float64
	IsAnalyzed          *bool
}

// IsEmpty reports whether the update carries no fields at all
func (u *SentimentUpdate) IsEmpty() bool {
	return u.SentimentResult == nil && u.SentimentConfidence == nil && u.IsAnalyzed == nil
}
