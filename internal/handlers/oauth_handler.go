package handlers

import (
	"log"
	"time"

	"bolamarcada/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const oauthStateCookie = "oauth_state"

// OAuthHandler handles the Google sign-in endpoints.
type OAuthHandler struct {
	oauthService *services.OAuthService
}

// NewOAuthHandler creates a new OAuthHandler.
func NewOAuthHandler(oauthService *services.OAuthService) *OAuthHandler {
	return &OAuthHandler{
		oauthService: oauthService,
	}
}

// RegisterRoutes registers the OAuth routes with the Fiber app.
func (h *OAuthHandler) RegisterRoutes(router fiber.Router) {
	oauthRoutes := router.Group("/oauth")
	oauthRoutes.Get("/google/login", h.HandleGoogleLogin)
	oauthRoutes.Get("/google/callback", h.HandleGoogleCallback)
}

// HandleGoogleLogin redirects the client to the provider's consent page.
// The state parameter is mirrored in a short-lived cookie and rechecked
// on the callback.
func (h *OAuthHandler) HandleGoogleLogin(c *fiber.Ctx) error {
	state := uuid.New().String()
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
	})
	return c.Redirect(h.oauthService.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// HandleGoogleCallback exchanges the authorization code and returns an
// access token, auto-provisioning the user on first login.
func (h *OAuthHandler) HandleGoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" || state != c.Cookies(oauthStateCookie) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid OAuth state",
		})
	}
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing authorization code",
		})
	}

	token, err := h.oauthService.HandleCallback(c.UserContext(), code)
	if err != nil {
		log.Printf("OAuth callback failed: %v", err)
		return errorJSON(c, "OAuth sign-in failed", err)
	}
	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}
