package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ADITHIYAN008/backend/internal/api/dto"
	"github.com/ADITHIYAN008/backend/internal/service"
	apperrors "github.com/ADITHIYAN008/backend/pkg/util"
)

// EmployeesHandler exposes CRUD endpoints for employee users.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employeeService}
}

// List handles GET /users.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.employees.List())
}

// Create handles POST /users.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.employees.Create(req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(user)
}

// Update handles PUT /users/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	var req dto.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.employees.Update(c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// BulkUpload handles POST /users/bulk. The body must be a JSON array.
func (h *EmployeesHandler) BulkUpload(c *fiber.Ctx) error {
	var entries []dto.EmployeeCreateRequest
	if err := json.Unmarshal(c.Body(), &entries); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	count := h.employees.BulkUpload(entries)
	return c.JSON(dto.BulkUploadResponse{Message: "Bulk users uploaded", Count: count})
}
