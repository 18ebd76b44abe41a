package dto

import (
	"time"

	"github.com/spec-kit/event-registration/internal/domain"
)

// RegistrationResponse is the wire shape of a ledger entry.
type RegistrationResponse struct {
	ID        string                    `json:"id"`
	AccountID string                    `json:"account_id"`
	EventID   string                    `json:"event_id"`
	Status    domain.RegistrationStatus `json:"status"`
	CreatedAt time.Time                 `json:"created_at"`
}

// NewRegistrationResponse maps a domain registration to its wire shape.
func NewRegistrationResponse(registration *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:        registration.ID,
		AccountID: registration.AccountID,
		EventID:   registration.EventID,
		Status:    registration.Status,
		CreatedAt: registration.CreatedAt,
	}
}

// RegistrationDetailResponse expands a ledger entry with account and event
// summaries.
type RegistrationDetailResponse struct {
	RegistrationResponse
	Account RegistrationAccountSummary `json:"account"`
	Event   RegistrationEventSummary   `json:"event"`
}

// RegistrationAccountSummary carries the review-relevant account fields.
type RegistrationAccountSummary struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Institution   string `json:"institution"`
	InstitutionID string `json:"institution_id"`
}

// RegistrationEventSummary carries the event fields shown in listings.
type RegistrationEventSummary struct {
	Title string `json:"title"`
}

// NewRegistrationDetailResponse maps an expanded ledger entry.
func NewRegistrationDetailResponse(detail *domain.RegistrationDetail) RegistrationDetailResponse {
	return RegistrationDetailResponse{
		RegistrationResponse: NewRegistrationResponse(&detail.Registration),
		Account: RegistrationAccountSummary{
			FullName:      detail.AccountFullName,
			Email:         detail.AccountEmail,
			Institution:   detail.AccountInstitution,
			InstitutionID: detail.AccountInstitutionID,
		},
		Event: RegistrationEventSummary{Title: detail.EventTitle},
	}
}

// NewRegistrationDetailListResponse maps a slice of expanded entries.
func NewRegistrationDetailListResponse(list []domain.RegistrationDetail) []RegistrationDetailResponse {
	result := make([]RegistrationDetailResponse, 0, len(list))
	for i := range list {
		result = append(result, NewRegistrationDetailResponse(&list[i]))
	}
	return result
}

// UpdateRegistrationRequest payload for the admin ledger status update.
type UpdateRegistrationRequest struct {
	Status string `json:"status"`
}
