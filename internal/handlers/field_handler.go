package handlers

import (
	"log"

	"bolamarcada/internal/middleware"
	"bolamarcada/internal/models"
	"bolamarcada/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FieldHandler handles HTTP requests for fields.
type FieldHandler struct {
	service     *services.FieldService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewFieldHandler creates a new FieldHandler.
func NewFieldHandler(service *services.FieldService, authService *services.AuthService) *FieldHandler {
	return &FieldHandler{
		service:     service,
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the field routes with the Fiber app. Reads
// are public, writes require authentication.
func (h *FieldHandler) RegisterRoutes(router fiber.Router) {
	fieldRoutes := router.Group("/fields")
	fieldRoutes.Get("/", h.HandleGetFields)
	fieldRoutes.Get("/:id", h.HandleGetFieldByID)

	authRequired := middleware.AuthRequired(h.authService)
	fieldRoutes.Post("/", authRequired, h.HandleCreateField)
	fieldRoutes.Patch("/:id", authRequired, h.HandleUpdateField)
	fieldRoutes.Delete("/:id", authRequired, h.HandleDeleteField)
}

// FieldCreateRequest represents the request body for a new field.
type FieldCreateRequest struct {
	SportsCenterID uint    `json:"sports_center_id" validate:"required"`
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	FieldType      string  `json:"field_type" validate:"required"`
	PricePerHour   float64 `json:"price_per_hour" validate:"required,gt=0"`
	PhotoPath      string  `json:"photo_path"`
	Description    string  `json:"description" validate:"omitempty,max=500"`
}

// HandleCreateField creates a new field in a sports center.
func (h *FieldHandler) HandleCreateField(c *fiber.Ctx) error {
	var req FieldCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing field request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	field := &models.Field{
		SportsCenterID: req.SportsCenterID,
		Name:           req.Name,
		FieldType:      req.FieldType,
		PricePerHour:   req.PricePerHour,
		PhotoPath:      req.PhotoPath,
		Description:    req.Description,
	}
	created, err := h.service.CreateField(field)
	if err != nil {
		log.Printf("Error creating field: %v", err)
		return errorJSON(c, "Could not create field", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Field created successfully",
		"field":   created,
	})
}

// HandleGetFields retrieves the fields of a sports center given by the
// sports_center_id query parameter.
func (h *FieldHandler) HandleGetFields(c *fiber.Ctx) error {
	sportsCenterID := c.QueryInt("sports_center_id")
	if sportsCenterID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "sports_center_id query parameter is required",
		})
	}
	fields, err := h.service.GetFieldsBySportsCenter(uint(sportsCenterID))
	if err != nil {
		log.Printf("Error getting fields for sports center %d: %v", sportsCenterID, err)
		return errorJSON(c, "Could not retrieve fields", err)
	}
	return c.JSON(fields)
}

// HandleGetFieldByID retrieves a single field by its ID.
func (h *FieldHandler) HandleGetFieldByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid field ID",
		})
	}
	field, err := h.service.GetFieldByID(uint(id))
	if err != nil {
		log.Printf("Error getting field %d: %v", id, err)
		return errorJSON(c, "Could not retrieve field", err)
	}
	return c.JSON(field)
}

// FieldUpdateRequest represents the request body for a field update.
type FieldUpdateRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=2,max=100"`
	FieldType    *string  `json:"field_type"`
	PricePerHour *float64 `json:"price_per_hour" validate:"omitempty,gt=0"`
	PhotoPath    *string  `json:"photo_path"`
	Description  *string  `json:"description" validate:"omitempty,max=500"`
}

// HandleUpdateField updates an existing field.
func (h *FieldHandler) HandleUpdateField(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid field ID",
		})
	}

	field, err := h.service.GetFieldByID(uint(id))
	if err != nil {
		return errorJSON(c, "Could not retrieve field", err)
	}

	var req FieldUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if req.Name != nil {
		field.Name = *req.Name
	}
	if req.FieldType != nil {
		field.FieldType = *req.FieldType
	}
	if req.PricePerHour != nil {
		field.PricePerHour = *req.PricePerHour
	}
	if req.PhotoPath != nil {
		field.PhotoPath = *req.PhotoPath
	}
	if req.Description != nil {
		field.Description = *req.Description
	}

	if err := h.service.UpdateField(field); err != nil {
		log.Printf("Error updating field %d: %v", id, err)
		return errorJSON(c, "Could not update field", err)
	}
	return c.JSON(fiber.Map{
		"message": "Field updated successfully",
		"field":   field,
	})
}

// HandleDeleteField deletes a field by its ID.
func (h *FieldHandler) HandleDeleteField(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid field ID",
		})
	}
	if err := h.service.DeleteField(uint(id)); err != nil {
		log.Printf("Error deleting field %d: %v", id, err)
		return errorJSON(c, "Could not delete field", err)
	}
	return c.JSON(fiber.Map{
		"message": "Field deleted successfully",
	})
}
