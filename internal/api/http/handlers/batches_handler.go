package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ADITHIYAN008/backend/internal/api/dto"
	"github.com/ADITHIYAN008/backend/internal/service"
	apperrors "github.com/ADITHIYAN008/backend/pkg/util"
)

// BatchesHandler exposes CRUD endpoints for training batches.
type BatchesHandler struct {
	batches *service.BatchService
}

// NewBatchesHandler constructs handler.
func NewBatchesHandler(batchService *service.BatchService) *BatchesHandler {
	return &BatchesHandler{batches: batchService}
}

// List handles GET /batches.
func (h *BatchesHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.batches.List())
}

// Create handles POST /batches.
func (h *BatchesHandler) Create(c *fiber.Ctx) error {
	var req dto.BatchCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	batch, err := h.batches.Create(req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(batch)
}

// Update handles PUT /batches/:code.
func (h *BatchesHandler) Update(c *fiber.Ctx) error {
	var req dto.BatchUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	batch, err := h.batches.Update(c.Params("code"), req)
	if err != nil {
		return err
	}
	return c.JSON(batch)
}
