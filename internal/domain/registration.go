package domain

import "time"

// RegistrationStatus tracks the review state of an account/event pairing.
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// Registration is one entry in the ledger pairing an account with an event.
// At most one registration exists per (AccountID, EventID); the store enforces
// this with a unique constraint.
type Registration struct {
	ID        string
	AccountID string
	EventID   string
	Status    RegistrationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegistrationDetail expands a ledger entry with account and event summaries
// for listing surfaces.
type RegistrationDetail struct {
	Registration
	AccountFullName      string
	AccountEmail         string
	AccountInstitution   string
	AccountInstitutionID string
	EventTitle           string
}
