package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-registration/internal/config"
	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/events"
	"github.com/spec-kit/event-registration/internal/repository"
	apperrors "github.com/spec-kit/event-registration/pkg/util"
)

// ReviewService coordinates the admin approval workflow over account payment
// statuses and the registration ledger.
type ReviewService struct {
	accounts        repository.AccountRepository
	registrations   repository.RegistrationRepository
	homeInstitution string
	dispatcher      events.Dispatcher
}

// ReviewDependencies bundles repositories for the review service.
type ReviewDependencies struct {
	AccountRepo      repository.AccountRepository
	RegistrationRepo repository.RegistrationRepository
	Dispatcher       events.Dispatcher
}

// NewReviewService constructs the service.
func NewReviewService(cfg config.Config, deps ReviewDependencies) *ReviewService {
	return &ReviewService{
		accounts:        deps.AccountRepo,
		registrations:   deps.RegistrationRepo,
		homeInstitution: domain.NormalizeInstitution(cfg.Registration.HomeInstitution),
		dispatcher:      deps.Dispatcher,
	}
}

// ListAccountRegistrations returns the review queue, newest first.
// Home-institution accounts are auto-approved and never part of the queue.
// Credential hashes are stripped from every result.
func (s *ReviewService) ListAccountRegistrations(ctx context.Context, status *domain.PaymentStatus) ([]domain.Account, error) {
	if status != nil {
		switch *status {
		case domain.PaymentStatusPending, domain.PaymentStatusApproved, domain.PaymentStatusRejected:
		default:
			return nil, apperrors.NewValidationError("invalid payment status filter", map[string]any{"status": *status})
		}
	}

	accounts, err := s.accounts.ListReviewQueue(ctx, s.homeInstitution, status)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	for i := range accounts {
		accounts[i].PasswordHash = ""
	}
	return accounts, nil
}

// ReviewAccount applies an approve/reject decision to an account and cascades
// it over that account's pending registrations. Registrations already decided
// keep their status.
func (s *ReviewService) ReviewAccount(ctx context.Context, accountID string, decision domain.PaymentStatus) (*domain.Account, error) {
	if decision != domain.PaymentStatusApproved && decision != domain.PaymentStatusRejected {
		return nil, apperrors.NewValidationError("decision must be approved or rejected", map[string]any{"decision": decision})
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("account", map[string]any{"id": accountID})
		}
		return nil, apperrors.MapError(err)
	}

	account.PaymentStatus = decision
	account.IsApproved = decision == domain.PaymentStatusApproved

	if err := s.accounts.UpdateReview(ctx, account); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("account", map[string]any{"id": accountID})
		}
		return nil, apperrors.MapError(err)
	}

	if err := s.registrations.TransitionPendingByAccount(ctx, accountID, domain.RegistrationStatus(decision)); err != nil {
		return nil, apperrors.MapError(err)
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:      events.EventAccountReviewed,
		AccountID: account.ID,
		Payload:   events.AccountReviewedPayload{Decision: decision},
	})

	account.PasswordHash = ""
	return account, nil
}

// ListEventRegistrations returns ledger entries with account and event
// summaries, optionally filtered by status, newest first.
func (s *ReviewService) ListEventRegistrations(ctx context.Context, status *domain.RegistrationStatus) ([]domain.RegistrationDetail, error) {
	if status != nil {
		switch *status {
		case domain.RegistrationStatusPending, domain.RegistrationStatusApproved, domain.RegistrationStatusRejected:
		default:
			return nil, apperrors.NewValidationError("invalid registration status filter", map[string]any{"status": *status})
		}
	}

	details, err := s.registrations.List(ctx, status)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return details, nil
}

// UpdateEventRegistration sets the status of a single ledger entry.
func (s *ReviewService) UpdateEventRegistration(ctx context.Context, registrationID string, status domain.RegistrationStatus) error {
	switch status {
	case domain.RegistrationStatusPending, domain.RegistrationStatusApproved, domain.RegistrationStatusRejected:
	default:
		return apperrors.NewValidationError("invalid registration status", map[string]any{"status": status})
	}

	if err := s.registrations.UpdateStatus(ctx, registrationID, status); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("registration", map[string]any{"id": registrationID})
		}
		return apperrors.MapError(err)
	}
	return nil
}
