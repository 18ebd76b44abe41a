package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/events"
	"github.com/spec-kit/event-registration/internal/repository"
	apperrors "github.com/spec-kit/event-registration/pkg/util"
)

// eventListCacheKey holds the public catalog listing.
const eventListCacheKey = "catalog:events"

// eventListCacheTTL bounds staleness when an invalidation is lost.
const eventListCacheTTL = 5 * time.Minute

// Cache abstracts the Redis-backed catalog cache.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// CatalogService coordinates category and event lifecycles, including the
// cascade deletes that keep the ledger and account references consistent.
type CatalogService struct {
	categories repository.CategoryRepository
	catalog    repository.EventRepository
	cache      Cache
	dispatcher events.Dispatcher
}

// CatalogDependencies bundles repositories for the catalog service.
type CatalogDependencies struct {
	CategoryRepo repository.CategoryRepository
	EventRepo    repository.EventRepository
	Cache        Cache
	Dispatcher   events.Dispatcher
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{
		categories: deps.CategoryRepo,
		catalog:    deps.EventRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// EventInput describes event creation/update payloads.
type EventInput struct {
	Title       string
	Description string
	Date        string
	Time        string
	Venue       string
	ImageURL    *string
	Status      domain.EventStatus
	CategoryID  string
}

// ListCategories returns all categories ordered by name.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return categories, nil
}

// CreateCategory creates a category with a unique name (case-sensitive exact
// match, backed by the categories.name unique constraint).
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("category name is required", nil)
	}

	if _, err := s.categories.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewConflict("category already exists", map[string]any{"name": name})
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	category := &domain.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("category already exists", map[string]any{"name": name})
		}
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// DeleteCategory removes a category with its events, their registrations and
// every registered-event reference, atomically.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("category", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}

	if err := s.categories.DeleteCascade(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("category", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}

	s.invalidateEventList(ctx)
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventCategoryDeleted,
		Payload: events.CategoryDeletedPayload{CategoryID: category.ID, Name: category.Name},
	})
	return nil
}

// ListEvents returns the public catalog, served from cache when warm.
func (s *CatalogService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	if s.cache != nil {
		var cached []domain.Event
		if hit, err := s.cache.Get(ctx, eventListCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	list, err := s.catalog.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, eventListCacheKey, list, eventListCacheTTL)
	}
	return list, nil
}

// GetEvent fetches a single event with its category name.
func (s *CatalogService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("event", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return event, nil
}

// CreateEvent creates an event under an existing category.
func (s *CatalogService) CreateEvent(ctx context.Context, input EventInput) (*domain.Event, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.CategoryID) == "" {
		return nil, apperrors.NewValidationError("title and category id are required", nil)
	}
	if input.Status == "" {
		input.Status = domain.EventStatusUpcoming
	}
	if err := validateEventStatus(input.Status); err != nil {
		return nil, err
	}

	category, err := s.categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("category", map[string]any{"id": input.CategoryID})
		}
		return nil, apperrors.MapError(err)
	}

	event := &domain.Event{
		Title:        input.Title,
		Description:  input.Description,
		Date:         input.Date,
		Time:         input.Time,
		Venue:        input.Venue,
		ImageURL:     input.ImageURL,
		Status:       input.Status,
		CategoryID:   category.ID,
		CategoryName: category.Name,
	}
	if err := s.catalog.Create(ctx, event); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidateEventList(ctx)
	return event, nil
}

// UpdateEvent applies field changes to an existing event.
func (s *CatalogService) UpdateEvent(ctx context.Context, id string, input EventInput) (*domain.Event, error) {
	event, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("event", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	if strings.TrimSpace(input.Title) != "" {
		event.Title = input.Title
	}
	if input.Description != "" {
		event.Description = input.Description
	}
	if input.Date != "" {
		event.Date = input.Date
	}
	if input.Time != "" {
		event.Time = input.Time
	}
	if input.Venue != "" {
		event.Venue = input.Venue
	}
	if input.ImageURL != nil {
		event.ImageURL = input.ImageURL
	}
	if input.Status != "" {
		if err := validateEventStatus(input.Status); err != nil {
			return nil, err
		}
		event.Status = input.Status
	}
	if strings.TrimSpace(input.CategoryID) != "" && input.CategoryID != event.CategoryID {
		category, err := s.categories.GetByID(ctx, input.CategoryID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewNotFound("category", map[string]any{"id": input.CategoryID})
			}
			return nil, apperrors.MapError(err)
		}
		event.CategoryID = category.ID
		event.CategoryName = category.Name
	}

	if err := s.catalog.Update(ctx, event); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("event", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	s.invalidateEventList(ctx)
	return event, nil
}

// DeleteEvent removes an event with its registrations and registered-event
// references, atomically.
func (s *CatalogService) DeleteEvent(ctx context.Context, id string) error {
	event, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("event", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}

	if err := s.catalog.DeleteCascade(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("event", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}

	s.invalidateEventList(ctx)
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventCatalogEventDeleted,
		Payload: events.CatalogEventDeletedPayload{EventID: event.ID, Title: event.Title},
	})
	return nil
}

func (s *CatalogService) invalidateEventList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx, eventListCacheKey)
}

func validateEventStatus(status domain.EventStatus) error {
	switch status {
	case domain.EventStatusUpcoming, domain.EventStatusOngoing, domain.EventStatusCompleted:
		return nil
	default:
		return apperrors.NewValidationError("invalid event status", map[string]any{"status": status})
	}
}
