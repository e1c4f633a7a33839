package auth

import (
	"context"
	"net/http"
	"os"
	"time"

	"slices"

	"codeberg.org/creatorkit/server/creatorkit/profiles"
	"codeberg.org/creatorkit/server/internal/auth"
	"codeberg.org/creatorkit/server/internal/errors"
	"codeberg.org/creatorkit/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth/gothic"
)

var (
	sessionStore = sessions.NewCookieStore([]byte(os.Getenv("SESSION_SECRET")))
)

func init() {
	// configure session options
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600, // 1 hour
		HttpOnly: true,
		Secure:   os.Getenv("ENVIRONMENT") == "production",
		SameSite: http.SameSiteLaxMode,
	}
}

// fires best-effort workflow events
type EventSender interface {
	UserSignedUp(ctx context.Context, userID, email string) error
}

// BeginAuthHandler godoc
// @Summary Start OAuth authentication
// @Description Begin OAuth authentication flow with specified provider (google, github)
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google, github)
// @Success 302 {string} string "Redirect to OAuth provider"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider} [get]
func BeginAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if !isValidProvider(provider) {
			errors.BadRequest(c, "invalid provider", nil)
			return
		}

		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary OAuth callback
// @Description OAuth provider callback. Returns profile data and JWT token
// @Tags auth
// @Produce json
// @Param provider path string true "OAuth provider" Enums(google, github)
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider}/callback [get]
func CallbackHandler(profileRepo *profiles.Repository, events EventSender) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			errors.InternalError(c, "authentication failed", err)
			return
		}

		profile, created, err := profileRepo.FindOrCreateByProvider(
			c.Request.Context(),
			gothUser.Provider,
			gothUser.UserID,
			gothUser.Email,
		)

		if err != nil {
			errors.InternalError(c, "failed to create profile", err)
			return
		}

		if created {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := events.UserSignedUp(ctx, profile.ID, profile.Email); err != nil {
					logger.Warn("user_signed_up event not delivered", "user_id", profile.ID, "error", err)
				}
			}()
		}

		token, err := auth.GenerateJWT(profile.ID, profile.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Profile: profile,
			Token:   token,
		})
	}
}

// GetCurrentUserHandler godoc
// @Summary Get current profile
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
// @Security BearerAuth
func GetCurrentUserHandler(profileRepo *profiles.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)

		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		profile, err := profileRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.NotFound(c, "profile")
			return
		}

		c.JSON(http.StatusOK, ProfileResponse{Profile: profile})
	}
}

// PostSignupHandler godoc
// @Summary Provision a profile after signup
// @Description Idempotently creates a free-plan profile for an account created by the external auth system. Re-delivery of the same signup succeeds without modifying the existing profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PostSignupRequest true "Signup data"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/post-signup [post]
func PostSignupHandler(profileRepo *profiles.Repository, events EventSender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PostSignupRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, "user_id and email are required")
			return
		}

		profile, err := profileRepo.Provision(c.Request.Context(), req.UserID, req.Email)
		if err != nil {
			errors.InternalError(c, "failed to provision profile", err)
			return
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := events.UserSignedUp(ctx, profile.ID, profile.Email); err != nil {
				logger.Warn("user_signed_up event not delivered", "user_id", profile.ID, "error", err)
			}
		}()

		c.JSON(http.StatusOK, ProfileResponse{Profile: profile})
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Clear authentication session
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/v1/auth/logout [post]
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to logout user from gothic session")
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}

func isValidProvider(provider string) bool {
	validProviders := []string{"google", "github"}
	return slices.Contains(validProviders, provider)
}
