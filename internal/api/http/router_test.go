package http

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/event-registration/internal/api/http/handlers"
	"github.com/spec-kit/event-registration/internal/auth"
	"github.com/spec-kit/event-registration/internal/config"
	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/observability"
	"github.com/spec-kit/event-registration/internal/service"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
}

func (s *stubAccountRepo) Create(context.Context, *domain.Account) error { return nil }

func (s *stubAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	if account, ok := s.accounts[id]; ok {
		clone := *account
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, account := range s.accounts {
		if account.Email == email {
			clone := *account
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubAccountRepo) UpdateReview(context.Context, *domain.Account) error { return nil }

func (s *stubAccountRepo) ListReviewQueue(context.Context, string, *domain.PaymentStatus) ([]domain.Account, error) {
	return []domain.Account{}, nil
}

func (s *stubAccountRepo) AddRegisteredEvent(context.Context, string, string) error    { return nil }
func (s *stubAccountRepo) RemoveRegisteredEvent(context.Context, string, string) error { return nil }

type stubEventRepo struct {
	events map[string]*domain.Event
}

func (s *stubEventRepo) Create(context.Context, *domain.Event) error { return nil }
func (s *stubEventRepo) Update(context.Context, *domain.Event) error { return nil }

func (s *stubEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	if event, ok := s.events[id]; ok {
		clone := *event
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubEventRepo) List(context.Context) ([]domain.Event, error) {
	result := make([]domain.Event, 0, len(s.events))
	for _, event := range s.events {
		result = append(result, *event)
	}
	return result, nil
}

func (s *stubEventRepo) DeleteCascade(context.Context, string) error { return nil }

type stubCategoryRepo struct{}

func (stubCategoryRepo) Create(context.Context, *domain.Category) error { return nil }
func (stubCategoryRepo) GetByID(context.Context, string) (*domain.Category, error) {
	return nil, pgx.ErrNoRows
}
func (stubCategoryRepo) GetByName(context.Context, string) (*domain.Category, error) {
	return nil, pgx.ErrNoRows
}
func (stubCategoryRepo) List(context.Context) ([]domain.Category, error) {
	return []domain.Category{}, nil
}
func (stubCategoryRepo) DeleteCascade(context.Context, string) error { return nil }

type stubRegistrationRepo struct{}

func (stubRegistrationRepo) Create(_ context.Context, registration *domain.Registration) error {
	registration.ID = "reg-1"
	return nil
}
func (stubRegistrationRepo) GetByAccountAndEvent(context.Context, string, string) (*domain.Registration, error) {
	return nil, pgx.ErrNoRows
}
func (stubRegistrationRepo) DeleteByAccountAndEvent(context.Context, string, string) error {
	return nil
}
func (stubRegistrationRepo) ListByAccount(context.Context, string) ([]domain.RegistrationDetail, error) {
	return []domain.RegistrationDetail{}, nil
}
func (stubRegistrationRepo) List(context.Context, *domain.RegistrationStatus) ([]domain.RegistrationDetail, error) {
	return []domain.RegistrationDetail{}, nil
}
func (stubRegistrationRepo) UpdateStatus(context.Context, string, domain.RegistrationStatus) error {
	return nil
}
func (stubRegistrationRepo) TransitionPendingByAccount(context.Context, string, domain.RegistrationStatus) error {
	return nil
}

type routerFixture struct {
	app        *fiber.App
	userToken  string
	adminToken string
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:    "test-secret",
			TokenTTLDays: 1,
			BcryptCost:   bcrypt.MinCost,
		},
		Registration: config.RegistrationConfig{HomeInstitution: "kluniversity"},
	}

	accounts := &stubAccountRepo{accounts: map[string]*domain.Account{
		"acc-user": {
			ID: "acc-user", Email: "user@example.com", Institution: "Other College",
			Role: domain.RoleUser, IsApproved: true,
		},
		"acc-admin": {
			ID: "acc-admin", Email: "admin@example.com", Institution: "kluniversity",
			Role: domain.RoleAdmin, IsApproved: true,
		},
	}}
	catalog := &stubEventRepo{events: map[string]*domain.Event{
		"ev-1": {ID: "ev-1", Title: "Tech Talk", CategoryID: "cat-1", CategoryName: "Technical"},
	}}

	authService := service.NewAuthService(cfg, service.AuthDependencies{AccountRepo: accounts})
	reviewService := service.NewReviewService(cfg, service.ReviewDependencies{
		AccountRepo:      accounts,
		RegistrationRepo: stubRegistrationRepo{},
	})
	registrationService := service.NewRegistrationService(service.RegistrationDependencies{
		RegistrationRepo: stubRegistrationRepo{},
		EventRepo:        catalog,
		AccountRepo:      accounts,
	})
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		CategoryRepo: stubCategoryRepo{},
		EventRepo:    catalog,
	})

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("test", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authService),
		Events:         handlers.NewEventsHandler(catalogService, registrationService),
		Admin:          handlers.NewAdminHandler(reviewService, catalogService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), accounts),
	})

	userToken, _, err := authService.TokenManager().GenerateToken("acc-user", domain.RoleUser)
	require.NoError(t, err)
	adminToken, _, err := authService.TokenManager().GenerateToken("acc-admin", domain.RoleAdmin)
	require.NoError(t, err)

	return routerFixture{app: app, userToken: userToken, adminToken: adminToken}
}

func (f routerFixture) request(t *testing.T, method, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestEventCatalogRoutesArePublic(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, fiber.StatusOK, f.request(t, fiber.MethodGet, "/api/events", ""))
	assert.Equal(t, fiber.StatusOK, f.request(t, fiber.MethodGet, "/api/events/ev-1", ""))
	assert.Equal(t, fiber.StatusNotFound, f.request(t, fiber.MethodGet, "/api/events/missing", ""))
}

func TestProtectedEventRoutesRequireToken(t *testing.T) {
	f := newRouterFixture(t)

	tests := []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/api/events/registrations/mine"},
		{fiber.MethodPost, "/api/events/ev-1/register"},
		{fiber.MethodDelete, "/api/events/ev-1/register"},
	}

	for _, tc := range tests {
		assert.Equal(t, fiber.StatusUnauthorized, f.request(t, tc.method, tc.path, ""),
			"%s %s without token", tc.method, tc.path)
	}

	assert.Equal(t, fiber.StatusOK, f.request(t, fiber.MethodGet, "/api/events/registrations/mine", f.userToken))
	assert.Equal(t, fiber.StatusCreated, f.request(t, fiber.MethodPost, "/api/events/ev-1/register", f.userToken))
}

func TestAuthVerifyRoutes(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, fiber.StatusUnauthorized, f.request(t, fiber.MethodGet, "/api/auth/verify", ""))
	assert.Equal(t, fiber.StatusOK, f.request(t, fiber.MethodGet, "/api/auth/verify", f.userToken))
	assert.Equal(t, fiber.StatusOK, f.request(t, fiber.MethodGet, "/api/auth/check-role", f.userToken))
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, fiber.StatusUnauthorized, f.request(t, fiber.MethodGet, "/api/admin/registrations", ""))
	assert.Equal(t, fiber.StatusForbidden, f.request(t, fiber.MethodGet, "/api/admin/registrations", f.userToken))
	assert.Equal(t, fiber.StatusOK, f.request(t, fiber.MethodGet, "/api/admin/registrations", f.adminToken))
}
