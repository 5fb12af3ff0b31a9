package models

import "time"

// Feedback kinds.
const (
	FeedbackTypePositive = "positive"
	FeedbackTypeNegative = "negative"
	FeedbackTypeText     = "text"
)

// Feedback is a user feedback record. UserAgent is captured from the request
// header, not the body.
type Feedback struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Content   *string   `json:"content"`
	UserAgent *string   `json:"userAgent"`
	Timestamp time.Time `json:"timestamp"`
}

// InsertFeedback is the accepted payload for submitting feedback.
type InsertFeedback struct {
	Type    string  `json:"type" validate:"required,oneof=positive negative text"`
	Content *string `json:"content"`
}
