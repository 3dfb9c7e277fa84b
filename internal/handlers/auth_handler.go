package handlers

import (
	"log"

	"bolamarcada/internal/middleware"
	"bolamarcada/internal/models"
	"bolamarcada/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for signup, login and the user's own
// profile.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/signup", h.HandleSignup)
	userRoutes.Post("/login", h.HandleLogin)
	userRoutes.Post("/token", h.HandleToken)

	me := userRoutes.Group("/me", middleware.AuthRequired(h.authService))
	me.Get("/", h.HandleGetMe)
	me.Patch("/", h.HandleUpdateMe)
	me.Delete("/", h.HandleDeleteMe)
}

// SignupRequest represents the request body for user registration.
type SignupRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,password"`
	CPF      *string `json:"cpf" validate:"omitempty,len=11,numeric"`
	Phone    *string `json:"phone"`
	Avatar   string  `json:"avatar"`
}

// HandleSignup handles new user registration.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing signup request body: %v", err)
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

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		CPF:      req.CPF,
		Phone:    req.Phone,
		Avatar:   req.Avatar,
	}
	if err := h.authService.RegisterUser(user); err != nil {
		log.Printf("Error registering user: %v", err)
		return errorJSON(c, "Registration failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues an access token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
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

	return h.issueToken(c, req.Email, req.Password)
}

// HandleToken implements the OAuth2 password-grant form: the username
// field carries the email. Kept alongside HandleLogin so interactive API
// clients can authenticate with a standard form post.
func (h *AuthHandler) HandleToken(c *fiber.Ctx) error {
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "username and password form fields are required",
		})
	}
	return h.issueToken(c, email, password)
}

func (h *AuthHandler) issueToken(c *fiber.Ctx, email, password string) error {
	token, err := h.authService.Login(email, password)
	if err != nil {
		log.Printf("Error during login for %s: %v", email, err)
		return errorJSON(c, "Authentication failed", err)
	}
	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// HandleGetMe returns the authenticated user's profile.
func (h *AuthHandler) HandleGetMe(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserContextKey).(*models.User)
	return c.JSON(user)
}

// UpdateMeRequest represents the request body for a profile update.
type UpdateMeRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

// HandleUpdateMe applies a self-service profile update.
func (h *AuthHandler) HandleUpdateMe(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserContextKey).(*models.User)

	var req UpdateMeRequest
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
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}

	if err := h.authService.UpdateProfile(user); err != nil {
		log.Printf("Error updating profile for user %s: %v", user.ID, err)
		return errorJSON(c, "Could not update profile", err)
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// HandleDeleteMe soft-deletes the authenticated user's account.
func (h *AuthHandler) HandleDeleteMe(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserContextKey).(*models.User)
	if err := h.authService.Deactivate(user); err != nil {
		log.Printf("Error deactivating user %s: %v", user.ID, err)
		return errorJSON(c, "Could not deactivate account", err)
	}
	return c.JSON(fiber.Map{
		"message": "Account deactivated",
	})
}
