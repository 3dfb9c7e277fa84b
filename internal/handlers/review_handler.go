package handlers

import (
	"log"

	"bolamarcada/internal/middleware"
	"bolamarcada/internal/models"
	"bolamarcada/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for field reviews.
type ReviewHandler struct {
	service     *services.ReviewService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService, authService *services.AuthService) *ReviewHandler {
	return &ReviewHandler{
		service:     service,
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Get("/", h.HandleGetReviews)
	reviewRoutes.Get("/:id", h.HandleGetReviewByID)

	authRequired := middleware.AuthRequired(h.authService)
	reviewRoutes.Post("/", authRequired, h.HandleCreateReview)
	reviewRoutes.Delete("/:id", authRequired, h.HandleDeleteReview)
}

// ReviewCreateRequest represents the request body for a new review.
type ReviewCreateRequest struct {
	FieldID uint   `json:"field_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=500"`
}

// HandleCreateReview creates a review authored by the authenticated user.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserContextKey).(*models.User)

	var req ReviewCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing review request body: %v", err)
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

	review := &models.Review{
		FieldID: req.FieldID,
		UserID:  user.ID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	created, err := h.service.CreateReview(review)
	if err != nil {
		log.Printf("Error creating review: %v", err)
		return errorJSON(c, "Could not create review", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review created successfully",
		"review":  created,
	})
}

// HandleGetReviews retrieves the reviews of a field given by the
// field_id query parameter.
func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	fieldID := c.QueryInt("field_id")
	if fieldID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "field_id query parameter is required",
		})
	}
	reviews, err := h.service.GetReviewsByField(uint(fieldID))
	if err != nil {
		log.Printf("Error getting reviews for field %d: %v", fieldID, err)
		return errorJSON(c, "Could not retrieve reviews", err)
	}
	return c.JSON(reviews)
}

// HandleGetReviewByID retrieves a single review by its ID.
func (h *ReviewHandler) HandleGetReviewByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid review ID",
		})
	}
	review, err := h.service.GetReviewByID(uint(id))
	if err != nil {
		log.Printf("Error getting review %d: %v", id, err)
		return errorJSON(c, "Could not retrieve review", err)
	}
	return c.JSON(review)
}

// HandleDeleteReview deletes a review by its ID.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid review ID",
		})
	}
	if err := h.service.DeleteReview(uint(id)); err != nil {
		log.Printf("Error deleting review %d: %v", id, err)
		return errorJSON(c, "Could not delete review", err)
	}
	return c.JSON(fiber.Map{
		"message": "Review deleted successfully",
	})
}
