package events

import (
	"time"

	"github.com/spec-kit/event-registration/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRegistered     EventType = "account_registered"
	EventAccountReviewed       EventType = "account_reviewed"
	EventRegistrationCreated   EventType = "registration_created"
	EventRegistrationCancelled EventType = "registration_cancelled"
	EventCatalogEventDeleted   EventType = "catalog_event_deleted"
	EventCategoryDeleted       EventType = "category_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	AccountID string      `json:"account_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountRegisteredPayload payload.
type AccountRegisteredPayload struct {
	Email         string               `json:"email"`
	Institution   string               `json:"institution"`
	Role          domain.Role          `json:"role"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

// AccountReviewedPayload payload.
type AccountReviewedPayload struct {
	Decision domain.PaymentStatus `json:"decision"`
}

// RegistrationCreatedPayload payload.
type RegistrationCreatedPayload struct {
	RegistrationID string                    `json:"registration_id"`
	EventID        string                    `json:"event_id"`
	Status         domain.RegistrationStatus `json:"status"`
}

// RegistrationCancelledPayload payload.
type RegistrationCancelledPayload struct {
	EventID string `json:"event_id"`
}

// CatalogEventDeletedPayload payload.
type CatalogEventDeletedPayload struct {
	EventID string `json:"event_id"`
	Title   string `json:"title"`
}

// CategoryDeletedPayload payload.
type CategoryDeletedPayload struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}
