package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-registration/internal/auth"
	"github.com/spec-kit/event-registration/internal/config"
	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/events"
	"github.com/spec-kit/event-registration/internal/repository"
	apperrors "github.com/spec-kit/event-registration/pkg/util"
)

// AuthService coordinates account registration and login flows.
type AuthService struct {
	accounts        repository.AccountRepository
	tokenMgr        *auth.TokenManager
	bcryptCost      int
	homeInstitution string
	dispatcher      events.Dispatcher
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	AccountRepo repository.AccountRepository
	Dispatcher  events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		accounts:        deps.AccountRepo,
		tokenMgr:        auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLDays),
		bcryptCost:      cfg.Auth.BcryptCost,
		homeInstitution: domain.NormalizeInstitution(cfg.Registration.HomeInstitution),
		dispatcher:      deps.Dispatcher,
	}
}

// RegisterInput describes the account registration payload.
type RegisterInput struct {
	Email         string
	Password      string
	FullName      string
	Institution   string
	InstitutionID string
	State         *string
	Address       *string
}

// Register creates a new account. Home-institution students are created as
// auto-approved administrators; everyone else enters the payment review queue
// as a pending user. The password is hashed immediately, never stored raw.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.Account, string, time.Time, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" ||
		strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.Institution) == "" ||
		strings.TrimSpace(input.InstitutionID) == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("email, password, full name, institution and institution id are required", nil)
	}

	if _, err := s.accounts.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("account already exists", map[string]any{"email": input.Email})
	} else if err != pgx.ErrNoRows {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	isHome := domain.NormalizeInstitution(input.Institution) == s.homeInstitution

	account := &domain.Account{
		Email:         input.Email,
		PasswordHash:  hash,
		FullName:      input.FullName,
		Institution:   input.Institution,
		InstitutionID: input.InstitutionID,
		State:         input.State,
		Address:       input.Address,
		Role:          domain.RoleUser,
		PaymentStatus: domain.PaymentStatusPending,
		IsApproved:    false,
	}
	if isHome {
		account.Role = domain.RoleAdmin
		account.PaymentStatus = domain.PaymentStatusApproved
		account.IsApproved = true
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, "", time.Time{}, apperrors.NewConflict("account already exists", map[string]any{"email": input.Email})
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:      events.EventAccountRegistered,
		AccountID: account.ID,
		Payload: events.AccountRegisteredPayload{
			Email:         account.Email,
			Institution:   account.Institution,
			Role:          account.Role,
			PaymentStatus: account.PaymentStatus,
		},
	})

	account.PasswordHash = ""
	return account, token, exp, nil
}

// Login authenticates an account. Unknown email and bad password produce the
// same error so callers cannot probe for account existence. Unapproved
// accounts outside the home institution are rejected even with correct
// credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, string, time.Time, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	if domain.NormalizeInstitution(account.Institution) != s.homeInstitution && !account.IsApproved {
		return nil, "", time.Time{}, apperrors.NewForbidden("account pending approval")
	}

	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	account.PasswordHash = ""
	return account, token, exp, nil
}

// GetAccount loads an account for the verify-token surface, credential hash
// stripped.
func (s *AuthService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("account", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	account.PasswordHash = ""
	return account, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
