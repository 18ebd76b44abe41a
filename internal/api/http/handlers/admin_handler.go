package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-registration/internal/api/dto"
	"github.com/spec-kit/event-registration/internal/domain"
	"github.com/spec-kit/event-registration/internal/service"
	apperrors "github.com/spec-kit/event-registration/pkg/util"
)

// AdminHandler exposes the review queue and catalog management endpoints.
// Routes using it are guarded by the admin role check.
type AdminHandler struct {
	review  *service.ReviewService
	catalog *service.CatalogService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(review *service.ReviewService, catalog *service.CatalogService) *AdminHandler {
	return &AdminHandler{review: review, catalog: catalog}
}

// ListAccountRegistrations handles GET /api/admin/registrations.
func (h *AdminHandler) ListAccountRegistrations(c *fiber.Ctx) error {
	var status *domain.PaymentStatus
	if raw := c.Query("status"); raw != "" && raw != "all" {
		parsed := domain.PaymentStatus(raw)
		status = &parsed
	}

	accounts, err := h.review.ListAccountRegistrations(c.Context(), status)
	if err != nil {
		return err
	}

	result := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		result = append(result, dto.NewAccountResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}

// ReviewAccount handles PUT /api/admin/registrations/:id.
func (h *AdminHandler) ReviewAccount(c *fiber.Ctx) error {
	var req dto.ReviewAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	account, err := h.review.ReviewAccount(c.Context(), c.Params("id"), domain.PaymentStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAccountResponse(account)})
}

// ListEventRegistrations handles GET /api/admin/event-registrations.
func (h *AdminHandler) ListEventRegistrations(c *fiber.Ctx) error {
	var status *domain.RegistrationStatus
	if raw := c.Query("status"); raw != "" && raw != "all" {
		parsed := domain.RegistrationStatus(raw)
		status = &parsed
	}

	list, err := h.review.ListEventRegistrations(c.Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRegistrationDetailListResponse(list)})
}

// UpdateEventRegistration handles PUT /api/admin/event-registrations/:id.
func (h *AdminHandler) UpdateEventRegistration(c *fiber.Ctx) error {
	var req dto.UpdateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.review.UpdateEventRegistration(c.Context(), c.Params("id"), domain.RegistrationStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "updated"}})
}

// CreateEvent handles POST /api/admin/events.
func (h *AdminHandler) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	event, err := h.catalog.CreateEvent(c.Context(), eventInputFromRequest(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewEventResponse(event)})
}

// UpdateEvent handles PUT /api/admin/events/:id.
func (h *AdminHandler) UpdateEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	event, err := h.catalog.UpdateEvent(c.Context(), c.Params("id"), eventInputFromRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventResponse(event)})
}

// DeleteEvent handles DELETE /api/admin/events/:id.
func (h *AdminHandler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.catalog.DeleteEvent(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

// ListCategories handles GET /api/admin/categories.
func (h *AdminHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories(c.Context())
	if err != nil {
		return err
	}

	result := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, dto.NewCategoryResponse(&categories[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}

// CreateCategory handles POST /api/admin/categories.
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	category, err := h.catalog.CreateCategory(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCategoryResponse(category)})
}

// DeleteCategory handles DELETE /api/admin/categories/:id.
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.catalog.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

func eventInputFromRequest(req dto.EventRequest) service.EventInput {
	return service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		ImageURL:    req.ImageURL,
		Status:      domain.EventStatus(req.Status),
		CategoryID:  req.CategoryID,
	}
}
