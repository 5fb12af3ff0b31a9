package models

import "github.com/workfree/pocket-lawyer/internal/types"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// ConsultationBooking is a request for a consultation with a lawyer. Status
// always starts at "pending"; only an explicit update changes it.
type ConsultationBooking struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         *string         `json:"phone"`
	LegalIssue    string          `json:"legalIssue"`
	PreferredDate *types.FlexTime `json:"preferredDate"`
	Message       *string         `json:"message"`
	Status        string          `json:"status"`
}

// InsertConsultationBooking is the accepted payload for creating a booking.
// Status is intentionally absent: the server assigns "pending" regardless of
// client input.
type InsertConsultationBooking struct {
	Name          string          `json:"name" validate:"required"`
	Email         string          `json:"email" validate:"required,email"`
	Phone         *string         `json:"phone"`
	LegalIssue    string          `json:"legalIssue" validate:"required"`
	PreferredDate *types.FlexTime `json:"preferredDate"`
	Message       *string         `json:"message"`
}

// UpdateConsultationBooking is the partial payload for PUT. Status is
// accepted here when it passes the enum rule; no transition validation is
// performed.
type UpdateConsultationBooking struct {
	Name          *string         `json:"name" validate:"omitempty,min=1"`
	Email         *string         `json:"email" validate:"omitempty,email"`
	Phone         *string         `json:"phone"`
	LegalIssue    *string         `json:"legalIssue" validate:"omitempty,min=1"`
	PreferredDate *types.FlexTime `json:"preferredDate"`
	Message       *string         `json:"message"`
	Status        *string         `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}
