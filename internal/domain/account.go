package domain

import (
	"strings"
	"time"
)

// Role separates attendees from platform administrators.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// PaymentStatus tracks the admin review decision for an account.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Account models a registered attendee or administrator.
type Account struct {
	ID            string
	Email         string
	PasswordHash  string
	FullName      string
	Institution   string
	InstitutionID string
	State         *string
	Address       *string
	Role          Role
	PaymentStatus PaymentStatus
	IsApproved    bool
	// RegisteredEvents is a denormalized set of event IDs mirroring the
	// registration ledger for this account.
	RegisteredEvents []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NormalizeInstitution canonicalizes an institution name for comparison against
// the home institution.
func NormalizeInstitution(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
