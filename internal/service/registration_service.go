package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/events"
	"github.com/spec-kit/event-registration/internal/repository"
	apperrors "github.com/spec-kit/event-registration/pkg/util"
)

// RegistrationService coordinates self-service event registration.
type RegistrationService struct {
	registrations repository.RegistrationRepository
	catalog       repository.EventRepository
	accounts      repository.AccountRepository
	dispatcher    events.Dispatcher
}

// RegistrationDependencies bundles repositories for the registration service.
type RegistrationDependencies struct {
	RegistrationRepo repository.RegistrationRepository
	EventRepo        repository.EventRepository
	AccountRepo      repository.AccountRepository
	Dispatcher       events.Dispatcher
}

// NewRegistrationService constructs the service.
func NewRegistrationService(deps RegistrationDependencies) *RegistrationService {
	return &RegistrationService{
		registrations: deps.RegistrationRepo,
		catalog:       deps.EventRepo,
		accounts:      deps.AccountRepo,
		dispatcher:    deps.Dispatcher,
	}
}

// RegisterForEvent creates a ledger entry pairing the account with the event.
// The entry starts approved when the account already cleared payment review,
// pending otherwise. Duplicate pairings are rejected with Conflict; the
// UNIQUE(account_id, event_id) constraint is the authority, so a concurrent
// duplicate insert loses cleanly even when the pre-check passes.
func (s *RegistrationService) RegisterForEvent(ctx context.Context, account *domain.Account, eventID string) (*domain.Registration, error) {
	if _, err := s.catalog.GetByID(ctx, eventID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("event", map[string]any{"id": eventID})
		}
		return nil, apperrors.MapError(err)
	}

	if _, err := s.registrations.GetByAccountAndEvent(ctx, account.ID, eventID); err == nil {
		return nil, apperrors.NewConflict("already registered for this event", map[string]any{"event_id": eventID})
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	status := domain.RegistrationStatusPending
	if account.IsApproved {
		status = domain.RegistrationStatusApproved
	}

	registration := &domain.Registration{
		AccountID: account.ID,
		EventID:   eventID,
		Status:    status,
	}
	if err := s.registrations.Create(ctx, registration); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("already registered for this event", map[string]any{"event_id": eventID})
		}
		return nil, apperrors.MapError(err)
	}

	if err := s.accounts.AddRegisteredEvent(ctx, account.ID, eventID); err != nil {
		return nil, apperrors.MapError(err)
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:      events.EventRegistrationCreated,
		AccountID: account.ID,
		Payload: events.RegistrationCreatedPayload{
			RegistrationID: registration.ID,
			EventID:        eventID,
			Status:         registration.Status,
		},
	})

	return registration, nil
}

// UnregisterFromEvent deletes the ledger entry and removes the event reference
// from the account. A missing pairing is NotFound, so a repeated unregister
// fails the same way.
func (s *RegistrationService) UnregisterFromEvent(ctx context.Context, accountID, eventID string) error {
	if err := s.registrations.DeleteByAccountAndEvent(ctx, accountID, eventID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("registration", map[string]any{"event_id": eventID})
		}
		return apperrors.MapError(err)
	}

	if err := s.accounts.RemoveRegisteredEvent(ctx, accountID, eventID); err != nil {
		return apperrors.MapError(err)
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:      events.EventRegistrationCancelled,
		AccountID: accountID,
		Payload:   events.RegistrationCancelledPayload{EventID: eventID},
	})

	return nil
}

// ListOwn returns the account's registrations with event summaries, newest
// first.
func (s *RegistrationService) ListOwn(ctx context.Context, accountID string) ([]domain.RegistrationDetail, error) {
	details, err := s.registrations.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return details, nil
}
