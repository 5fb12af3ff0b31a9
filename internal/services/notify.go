package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/workfree/pocket-lawyer/internal/config"
	"github.com/workfree/pocket-lawyer/internal/models"
)

// SendFeedbackNotification emits a best-effort notification for a feedback
// record. The email transport is disabled, so the rendered message is
// logged; the boolean mirrors the transport result for callers that count
// deliveries. Failure here never affects the request that created the
// feedback.
func SendFeedbackNotification(cfg *config.Config, fb models.Feedback) bool {
	var subject, typeText, contentText string

	switch fb.Type {
	case models.FeedbackTypePositive:
		subject = "Positive Feedback Received - Pocket Lawyer"
		typeText = "Positive (thumbs up)"
		contentText = "User gave positive feedback."
	case models.FeedbackTypeNegative:
		subject = "Negative Feedback Received - Pocket Lawyer"
		typeText = "Negative (thumbs down)"
		contentText = "User reported issues that need attention."
	case models.FeedbackTypeText:
		subject = "Detailed Feedback Received - Pocket Lawyer"
		typeText = "Text Feedback"
		contentText = "No content provided"
		if fb.Content != nil && *fb.Content != "" {
			contentText = *fb.Content
		}
	default:
		return false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New Feedback Received - Pocket Lawyer\n\n")
	fmt.Fprintf(&b, "Feedback Type: %s\n", typeText)
	fmt.Fprintf(&b, "Timestamp: %s\n", fb.Timestamp.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Message: %s\n", contentText)
	if fb.UserAgent != nil {
		fmt.Fprintf(&b, "User Browser: %s\n", *fb.UserAgent)
	}
	fmt.Fprintf(&b, "Feedback ID: #%d\n", fb.ID)

	// Email transport disabled; log the notification instead
	log.Printf("email notification (transport disabled): to=%s from=%s subject=%q\n%s",
		cfg.NotifyEmail, cfg.FromEmail, subject, b.String())

	return true
}
