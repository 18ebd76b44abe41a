package dto

import (
	"time"

	"github.com/spec-kit/event-registration/internal/domain"
)

// EventRequest payload for creating/updating events.
type EventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Venue       string  `json:"venue"`
	ImageURL    *string `json:"image_url,omitempty"`
	Status      string  `json:"status,omitempty"`
	CategoryID  string  `json:"category_id"`
}

// EventResponse is the wire shape of a catalog event.
type EventResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Date         string             `json:"date"`
	Time         string             `json:"time"`
	Venue        string             `json:"venue"`
	ImageURL     *string            `json:"image_url,omitempty"`
	Status       domain.EventStatus `json:"status"`
	CategoryID   string             `json:"category_id"`
	CategoryName string             `json:"category_name"`
	CreatedAt    time.Time          `json:"created_at"`
}

// NewEventResponse maps a domain event to its wire shape.
func NewEventResponse(event *domain.Event) EventResponse {
	return EventResponse{
		ID:           event.ID,
		Title:        event.Title,
		Description:  event.Description,
		Date:         event.Date,
		Time:         event.Time,
		Venue:        event.Venue,
		ImageURL:     event.ImageURL,
		Status:       event.Status,
		CategoryID:   event.CategoryID,
		CategoryName: event.CategoryName,
		CreatedAt:    event.CreatedAt,
	}
}

// NewEventListResponse maps a slice of domain events.
func NewEventListResponse(list []domain.Event) []EventResponse {
	result := make([]EventResponse, 0, len(list))
	for i := range list {
		result = append(result, NewEventResponse(&list[i]))
	}
	return result
}

// CategoryRequest payload for creating categories.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse is the wire shape of a category.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategoryResponse maps a domain category to its wire shape.
func NewCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt}
}
