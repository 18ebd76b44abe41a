package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-registration/internal/domain"
)

// AccountRepository defines persistence access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdateReview(ctx context.Context, account *domain.Account) error
	ListReviewQueue(ctx context.Context, excludedInstitution string, status *domain.PaymentStatus) ([]domain.Account, error)
	AddRegisteredEvent(ctx context.Context, accountID, eventID string) error
	RemoveRegisteredEvent(ctx context.Context, accountID, eventID string) error
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

const accountColumns = `id, email, password_hash, full_name, institution, institution_id,
               state, address, role, payment_status, is_approved, registered_events,
               created_at, updated_at`

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (email, password_hash, full_name, institution, institution_id, state, address, role, payment_status, is_approved)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, registered_events, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		account.Email,
		account.PasswordHash,
		account.FullName,
		account.Institution,
		account.InstitutionID,
		account.State,
		account.Address,
		account.Role,
		account.PaymentStatus,
		account.IsApproved,
	).Scan(&account.ID, &account.RegisteredEvents, &account.CreatedAt, &account.UpdatedAt)
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM accounts WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM accounts WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *accountRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.FullName,
		&account.Institution,
		&account.InstitutionID,
		&account.State,
		&account.Address,
		&account.Role,
		&account.PaymentStatus,
		&account.IsApproved,
		&account.RegisteredEvents,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateReview persists the review decision fields only. Profile and credential
// fields are never touched by the approval workflow.
func (r *accountRepository) UpdateReview(ctx context.Context, account *domain.Account) error {
	const query = `
        UPDATE accounts SET payment_status=$1, is_approved=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, account.PaymentStatus, account.IsApproved, account.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) ListReviewQueue(ctx context.Context, excludedInstitution string, status *domain.PaymentStatus) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + `
             FROM accounts WHERE LOWER(TRIM(institution)) <> $1`
	args := []any{excludedInstitution}

	if status != nil {
		args = append(args, *status)
		query += ` AND payment_status=$2`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.Email,
			&account.PasswordHash,
			&account.FullName,
			&account.Institution,
			&account.InstitutionID,
			&account.State,
			&account.Address,
			&account.Role,
			&account.PaymentStatus,
			&account.IsApproved,
			&account.RegisteredEvents,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, account)
	}
	return result, rows.Err()
}

// AddRegisteredEvent appends the event reference with set semantics: the update
// is a no-op when the reference is already present.
func (r *accountRepository) AddRegisteredEvent(ctx context.Context, accountID, eventID string) error {
	const query = `
        UPDATE accounts
        SET registered_events = array_append(registered_events, $2), updated_at=NOW()
        WHERE id=$1 AND NOT (registered_events @> ARRAY[$2])`

	_, err := r.pool.Exec(ctx, query, accountID, eventID)
	return err
}

func (r *accountRepository) RemoveRegisteredEvent(ctx context.Context, accountID, eventID string) error {
	const query = `
        UPDATE accounts
        SET registered_events = array_remove(registered_events, $2), updated_at=NOW()
        WHERE id=$1`

	_, err := r.pool.Exec(ctx, query, accountID, eventID)
	return err
}
