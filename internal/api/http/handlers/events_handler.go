package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-registration/internal/api/dto"
	"github.com/spec-kit/event-registration/internal/auth"
	"github.com/spec-kit/event-registration/internal/service"
	apperrors "github.com/spec-kit/event-registration/pkg/util"
)

// EventsHandler exposes the public catalog and self-service registration.
type EventsHandler struct {
	catalog       *service.CatalogService
	registrations *service.RegistrationService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(catalog *service.CatalogService, registrations *service.RegistrationService) *EventsHandler {
	return &EventsHandler{catalog: catalog, registrations: registrations}
}

// List handles GET /api/events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	list, err := h.catalog.ListEvents(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventListResponse(list)})
}

// Get handles GET /api/events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	event, err := h.catalog.GetEvent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventResponse(event)})
}

// Register handles POST /api/events/:id/register.
func (h *EventsHandler) Register(c *fiber.Ctx) error {
	account, ok := auth.AccountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	registration, err := h.registrations.RegisterForEvent(c.Context(), account, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewRegistrationResponse(registration)})
}

// Unregister handles DELETE /api/events/:id/register.
func (h *EventsHandler) Unregister(c *fiber.Ctx) error {
	account, ok := auth.AccountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.registrations.UnregisterFromEvent(c.Context(), account.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "unregistered"}})
}

// MyRegistrations handles GET /api/events/registrations/mine.
func (h *EventsHandler) MyRegistrations(c *fiber.Ctx) error {
	account, ok := auth.AccountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	list, err := h.registrations.ListOwn(c.Context(), account.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRegistrationDetailListResponse(list)})
}
