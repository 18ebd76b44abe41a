package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-registration/internal/domain"
)

func newRegistrationService(registrations *mockRegistrationRepo, catalog *mockEventRepo, accounts *mockAccountRepo, dispatcher *recordingDispatcher) *RegistrationService {
	return NewRegistrationService(RegistrationDependencies{
		RegistrationRepo: registrations,
		EventRepo:        catalog,
		AccountRepo:      accounts,
		Dispatcher:       dispatcher,
	})
}

func TestRegisterForEventStatusFollowsApproval(t *testing.T) {
	tests := []struct {
		name       string
		isApproved bool
		want       domain.RegistrationStatus
	}{
		{"approved account", true, domain.RegistrationStatusApproved},
		{"pending account", false, domain.RegistrationStatusPending},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			registrations := new(mockRegistrationRepo)
			catalog := new(mockEventRepo)
			accounts := new(mockAccountRepo)
			dispatcher := &recordingDispatcher{}

			catalog.On("GetByID", mock.Anything, "ev-1").Return(&domain.Event{ID: "ev-1"}, nil)
			registrations.On("GetByAccountAndEvent", mock.Anything, "acc-1", "ev-1").Return(nil, pgx.ErrNoRows)
			registrations.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Registration) bool {
				return r.AccountID == "acc-1" && r.EventID == "ev-1" && r.Status == tc.want
			})).Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Registration).ID = "reg-1"
			}).Return(nil)
			accounts.On("AddRegisteredEvent", mock.Anything, "acc-1", "ev-1").Return(nil)

			svc := newRegistrationService(registrations, catalog, accounts, dispatcher)

			account := &domain.Account{ID: "acc-1", IsApproved: tc.isApproved}
			registration, err := svc.RegisterForEvent(context.Background(), account, "ev-1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, registration.Status)
			require.Len(t, dispatcher.published, 1)
			registrations.AssertExpectations(t)
			accounts.AssertExpectations(t)
		})
	}
}

func TestRegisterForEventUnknownEvent(t *testing.T) {
	catalog := new(mockEventRepo)
	catalog.On("GetByID", mock.Anything, "missing").Return(nil, pgx.ErrNoRows)

	svc := newRegistrationService(new(mockRegistrationRepo), catalog, new(mockAccountRepo), &recordingDispatcher{})

	_, err := svc.RegisterForEvent(context.Background(), &domain.Account{ID: "acc-1"}, "missing")
	assert.Equal(t, "NOT_FOUND", domainErrorCode(t, err))
}

func TestRegisterForEventDuplicateConflict(t *testing.T) {
	registrations := new(mockRegistrationRepo)
	catalog := new(mockEventRepo)

	catalog.On("GetByID", mock.Anything, "ev-1").Return(&domain.Event{ID: "ev-1"}, nil)
	registrations.On("GetByAccountAndEvent", mock.Anything, "acc-1", "ev-1").Return(&domain.Registration{ID: "reg-1"}, nil)

	svc := newRegistrationService(registrations, catalog, new(mockAccountRepo), &recordingDispatcher{})

	_, err := svc.RegisterForEvent(context.Background(), &domain.Account{ID: "acc-1"}, "ev-1")
	assert.Equal(t, "CONFLICT", domainErrorCode(t, err))
	registrations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterForEventConcurrentDuplicateLosesCleanly(t *testing.T) {
	registrations := new(mockRegistrationRepo)
	catalog := new(mockEventRepo)

	catalog.On("GetByID", mock.Anything, "ev-1").Return(&domain.Event{ID: "ev-1"}, nil)
	// The pre-check passes but the unique constraint rejects the insert.
	registrations.On("GetByAccountAndEvent", mock.Anything, "acc-1", "ev-1").Return(nil, pgx.ErrNoRows)
	registrations.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505", ConstraintName: "registrations_account_event_key"})

	svc := newRegistrationService(registrations, catalog, new(mockAccountRepo), &recordingDispatcher{})

	_, err := svc.RegisterForEvent(context.Background(), &domain.Account{ID: "acc-1"}, "ev-1")
	assert.Equal(t, "CONFLICT", domainErrorCode(t, err))
}

func TestUnregisterFromEvent(t *testing.T) {
	registrations := new(mockRegistrationRepo)
	accounts := new(mockAccountRepo)
	dispatcher := &recordingDispatcher{}

	registrations.On("DeleteByAccountAndEvent", mock.Anything, "acc-1", "ev-1").Return(nil)
	accounts.On("RemoveRegisteredEvent", mock.Anything, "acc-1", "ev-1").Return(nil)

	svc := newRegistrationService(registrations, new(mockEventRepo), accounts, dispatcher)

	require.NoError(t, svc.UnregisterFromEvent(context.Background(), "acc-1", "ev-1"))
	require.Len(t, dispatcher.published, 1)
	accounts.AssertExpectations(t)
}

func TestUnregisterFromEventNotRegistered(t *testing.T) {
	registrations := new(mockRegistrationRepo)
	registrations.On("DeleteByAccountAndEvent", mock.Anything, "acc-1", "ev-1").Return(pgx.ErrNoRows)

	svc := newRegistrationService(registrations, new(mockEventRepo), new(mockAccountRepo), &recordingDispatcher{})

	// Never registered and repeat unregister fail identically.
	err := svc.UnregisterFromEvent(context.Background(), "acc-1", "ev-1")
	assert.Equal(t, "NOT_FOUND", domainErrorCode(t, err))

	err = svc.UnregisterFromEvent(context.Background(), "acc-1", "ev-1")
	assert.Equal(t, "NOT_FOUND", domainErrorCode(t, err))
}

func TestListOwn(t *testing.T) {
	registrations := new(mockRegistrationRepo)
	registrations.On("ListByAccount", mock.Anything, "acc-1").Return([]domain.RegistrationDetail{
		{Registration: domain.Registration{ID: "reg-2", EventID: "ev-2"}, EventTitle: "Hackathon"},
		{Registration: domain.Registration{ID: "reg-1", EventID: "ev-1"}, EventTitle: "Tech Talk"},
	}, nil)

	svc := newRegistrationService(registrations, new(mockEventRepo), new(mockAccountRepo), &recordingDispatcher{})

	list, err := svc.ListOwn(context.Background(), "acc-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Hackathon", list[0].EventTitle)
}
