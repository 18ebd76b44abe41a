package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/events"
)

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if acc := args.Get(0); acc != nil {
		return acc.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if acc := args.Get(0); acc != nil {
		return acc.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) UpdateReview(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *mockAccountRepo) ListReviewQueue(ctx context.Context, excludedInstitution string, status *domain.PaymentStatus) ([]domain.Account, error) {
	args := m.Called(ctx, excludedInstitution, status)
	if list := args.Get(0); list != nil {
		return list.([]domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) AddRegisteredEvent(ctx context.Context, accountID, eventID string) error {
	args := m.Called(ctx, accountID, eventID)
	return args.Error(0)
}

func (m *mockAccountRepo) RemoveRegisteredEvent(ctx context.Context, accountID, eventID string) error {
	args := m.Called(ctx, accountID, eventID)
	return args.Error(0)
}

type mockRegistrationRepo struct {
	mock.Mock
}

func (m *mockRegistrationRepo) Create(ctx context.Context, registration *domain.Registration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

func (m *mockRegistrationRepo) GetByAccountAndEvent(ctx context.Context, accountID, eventID string) (*domain.Registration, error) {
	args := m.Called(ctx, accountID, eventID)
	if reg := args.Get(0); reg != nil {
		return reg.(*domain.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationRepo) DeleteByAccountAndEvent(ctx context.Context, accountID, eventID string) error {
	args := m.Called(ctx, accountID, eventID)
	return args.Error(0)
}

func (m *mockRegistrationRepo) ListByAccount(ctx context.Context, accountID string) ([]domain.RegistrationDetail, error) {
	args := m.Called(ctx, accountID)
	if list := args.Get(0); list != nil {
		return list.([]domain.RegistrationDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationRepo) List(ctx context.Context, status *domain.RegistrationStatus) ([]domain.RegistrationDetail, error) {
	args := m.Called(ctx, status)
	if list := args.Get(0); list != nil {
		return list.([]domain.RegistrationDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationRepo) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockRegistrationRepo) TransitionPendingByAccount(ctx context.Context, accountID string, status domain.RegistrationStatus) error {
	args := m.Called(ctx, accountID, status)
	return args.Error(0)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if cat := args.Get(0); cat != nil {
		return cat.(*domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if cat := args.Get(0); cat != nil {
		return cat.(*domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if list := args.Get(0); list != nil {
		return list.([]domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) DeleteCascade(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockEventRepo) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if ev := args.Get(0); ev != nil {
		return ev.(*domain.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) List(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if list := args.Get(0); list != nil {
		return list.([]domain.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) DeleteCascade(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *mockCache) Invalidate(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
