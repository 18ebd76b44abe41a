package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-registration/internal/domain"
)

// EventRepository encapsulates event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	DeleteCascade(ctx context.Context, id string) error
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository instantiates repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (title, description, event_date, event_time, venue, image_url, status, category_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.Date,
		event.Time,
		event.Venue,
		event.ImageURL,
		event.Status,
		event.CategoryID,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	const query = `
        UPDATE events SET title=$1, description=$2, event_date=$3, event_time=$4, venue=$5,
            image_url=$6, status=$7, category_id=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		event.Title,
		event.Description,
		event.Date,
		event.Time,
		event.Venue,
		event.ImageURL,
		event.Status,
		event.CategoryID,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const eventSelect = `
        SELECT e.id, e.title, e.description, e.event_date, e.event_time, e.venue,
               e.image_url, e.status, e.category_id, c.name, e.created_at, e.updated_at
        FROM events e
        JOIN categories c ON c.id = e.category_id`

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	const query = eventSelect + ` WHERE e.id=$1`

	var event domain.Event
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.Venue,
		&event.ImageURL,
		&event.Status,
		&event.CategoryID,
		&event.CategoryName,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	const query = eventSelect + ` ORDER BY e.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Date,
			&event.Time,
			&event.Venue,
			&event.ImageURL,
			&event.Status,
			&event.CategoryID,
			&event.CategoryName,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	return result, rows.Err()
}

// DeleteCascade removes the event, its registrations and every
// registered-event reference pointing at it, as one transaction.
func (r *eventRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := scrubEventTx(ctx, tx, id); err != nil {
		return err
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}
