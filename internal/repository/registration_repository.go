package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-registration/internal/domain"
)

// RegistrationRepository encapsulates the account/event registration ledger.
// The registrations table carries UNIQUE(account_id, event_id); Create surfaces
// the raw unique-violation error so callers can classify the losing side of a
// concurrent duplicate insert.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *domain.Registration) error
	GetByAccountAndEvent(ctx context.Context, accountID, eventID string) (*domain.Registration, error)
	DeleteByAccountAndEvent(ctx context.Context, accountID, eventID string) error
	ListByAccount(ctx context.Context, accountID string) ([]domain.RegistrationDetail, error)
	List(ctx context.Context, status *domain.RegistrationStatus) ([]domain.RegistrationDetail, error)
	UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) error
	TransitionPendingByAccount(ctx context.Context, accountID string, status domain.RegistrationStatus) error
}

type registrationRepository struct {
	pool *pgxpool.Pool
}

// NewRegistrationRepository instantiates repository.
func NewRegistrationRepository(pool *pgxpool.Pool) RegistrationRepository {
	return &registrationRepository{pool: pool}
}

func (r *registrationRepository) Create(ctx context.Context, registration *domain.Registration) error {
	const query = `
        INSERT INTO registrations (account_id, event_id, status)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		registration.AccountID,
		registration.EventID,
		registration.Status,
	).Scan(&registration.ID, &registration.CreatedAt, &registration.UpdatedAt)
}

func (r *registrationRepository) GetByAccountAndEvent(ctx context.Context, accountID, eventID string) (*domain.Registration, error) {
	const query = `
        SELECT id, account_id, event_id, status, created_at, updated_at
        FROM registrations WHERE account_id=$1 AND event_id=$2`

	var registration domain.Registration
	if err := r.pool.QueryRow(ctx, query, accountID, eventID).Scan(
		&registration.ID,
		&registration.AccountID,
		&registration.EventID,
		&registration.Status,
		&registration.CreatedAt,
		&registration.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &registration, nil
}

func (r *registrationRepository) DeleteByAccountAndEvent(ctx context.Context, accountID, eventID string) error {
	const query = `DELETE FROM registrations WHERE account_id=$1 AND event_id=$2`

	cmd, err := r.pool.Exec(ctx, query, accountID, eventID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const registrationDetailSelect = `
        SELECT r.id, r.account_id, r.event_id, r.status, r.created_at, r.updated_at,
               a.full_name, a.email, a.institution, a.institution_id, e.title
        FROM registrations r
        JOIN accounts a ON a.id = r.account_id
        JOIN events e ON e.id = r.event_id`

func (r *registrationRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.RegistrationDetail, error) {
	const query = registrationDetailSelect + `
        WHERE r.account_id=$1 ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRegistrationDetails(rows)
}

func (r *registrationRepository) List(ctx context.Context, status *domain.RegistrationStatus) ([]domain.RegistrationDetail, error) {
	query := registrationDetailSelect
	args := []any{}

	if status != nil {
		args = append(args, *status)
		query += ` WHERE r.status=$1`
	}
	query += ` ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRegistrationDetails(rows)
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) error {
	const query = `UPDATE registrations SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// TransitionPendingByAccount moves every pending registration owned by the
// account to the given status. Already decided registrations are untouched.
func (r *registrationRepository) TransitionPendingByAccount(ctx context.Context, accountID string, status domain.RegistrationStatus) error {
	const query = `
        UPDATE registrations SET status=$1, updated_at=NOW()
        WHERE account_id=$2 AND status=$3`

	_, err := r.pool.Exec(ctx, query, status, accountID, domain.RegistrationStatusPending)
	return err
}

func scanRegistrationDetails(rows pgx.Rows) ([]domain.RegistrationDetail, error) {
	var result []domain.RegistrationDetail
	for rows.Next() {
		var detail domain.RegistrationDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.AccountID,
			&detail.EventID,
			&detail.Status,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&detail.AccountFullName,
			&detail.AccountEmail,
			&detail.AccountInstitution,
			&detail.AccountInstitutionID,
			&detail.EventTitle,
		); err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, rows.Err()
}
