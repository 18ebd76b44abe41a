package dto

import (
	"time"

	"github.com/spec-kit/event-registration/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	FullName      string  `json:"full_name"`
	Institution   string  `json:"institution"`
	InstitutionID string  `json:"institution_id"`
	State         *string `json:"state,omitempty"`
	Address       *string `json:"address,omitempty"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AccountResponse is the wire shape of an account. The credential hash is
// never part of it.
type AccountResponse struct {
	ID               string               `json:"id"`
	Email            string               `json:"email"`
	FullName         string               `json:"full_name"`
	Institution      string               `json:"institution"`
	InstitutionID    string               `json:"institution_id"`
	State            *string              `json:"state,omitempty"`
	Address          *string              `json:"address,omitempty"`
	Role             domain.Role          `json:"role"`
	PaymentStatus    domain.PaymentStatus `json:"payment_status"`
	IsApproved       bool                 `json:"is_approved"`
	RegisteredEvents []string             `json:"registered_events"`
	CreatedAt        time.Time            `json:"created_at"`
}

// NewAccountResponse maps a domain account to its wire shape.
func NewAccountResponse(account *domain.Account) AccountResponse {
	registered := account.RegisteredEvents
	if registered == nil {
		registered = []string{}
	}
	return AccountResponse{
		ID:               account.ID,
		Email:            account.Email,
		FullName:         account.FullName,
		Institution:      account.Institution,
		InstitutionID:    account.InstitutionID,
		State:            account.State,
		Address:          account.Address,
		Role:             account.Role,
		PaymentStatus:    account.PaymentStatus,
		IsApproved:       account.IsApproved,
		RegisteredEvents: registered,
		CreatedAt:        account.CreatedAt,
	}
}

// ReviewAccountRequest payload for the admin account review decision.
type ReviewAccountRequest struct {
	Status string `json:"status"`
}
