package tools

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"codeberg.org/creatorkit/server/creatorkit/profiles"
	"codeberg.org/creatorkit/server/creatorkit/runs"
	"codeberg.org/creatorkit/server/internal/auth"
	apierrors "codeberg.org/creatorkit/server/internal/errors"
	"codeberg.org/creatorkit/server/internal/logger"
	"codeberg.org/creatorkit/server/internal/quota"
	"codeberg.org/creatorkit/server/internal/toolkit"
	"github.com/gin-gonic/gin"
)

// loads and lazily provisions user profiles
type ProfileStore interface {
	FindByID(ctx context.Context, userID string) (*profiles.Profile, error)
	Provision(ctx context.Context, userID, email string) (*profiles.Profile, error)
}

// records completed generations in the history collection
type RunRecorder interface {
	Create(ctx context.Context, userID, toolSlug string, input map[string]string, output any) (*runs.Run, error)
}

// decides quota admission for one generation request
type Admitter interface {
	Decide(ctx context.Context, userID, plan string, now time.Time) (quota.Decision, error)
}

// fires best-effort workflow events
type EventSender interface {
	ToolUsed(ctx context.Context, toolSlug, userID string) error
}

// ListToolsHandler godoc
// @Summary List available tools
// @Description Returns all tool definitions including field schemas for form rendering
// @Tags tools
// @Produce json
// @Success 200 {object} ListResponse
// @Router /api/v1/tools [get]
func ListToolsHandler(registry *toolkit.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ListResponse{Tools: registry.List()})
	}
}

// GetToolHandler godoc
// @Summary Get one tool definition
// @Tags tools
// @Produce json
// @Param slug path string true "Tool slug"
// @Success 200 {object} toolkit.Definition
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/tools/{slug} [get]
func GetToolHandler(registry *toolkit.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		def, ok := registry.Get(c.Param("slug"))
		if !ok {
			apierrors.NotFound(c, "tool")
			return
		}

		c.JSON(http.StatusOK, def)
	}
}

// GenerateHandler godoc
// @Summary Run a content generation tool
// @Description Validates input against the tool's field schema, enforces the daily quota for authenticated free-tier users, and returns the generated output. Anonymous callers are admitted without quota or history.
// @Tags tools
// @Accept json
// @Produce json
// @Param slug path string true "Tool slug"
// @Success 200 {object} GenerateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse "limit_reached: free daily quota exhausted"
// @Router /api/v1/tools/{slug}/generate [post]
// @Security BearerAuth
func GenerateHandler(
	registry *toolkit.Registry,
	policy Admitter,
	profileStore ProfileStore,
	runRecorder RunRecorder,
	events EventSender,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		def, ok := registry.Get(slug)
		if !ok || !def.CanGenerate() {
			apierrors.NotFound(c, "tool")
			return
		}

		var raw map[string]any
		if err := c.ShouldBindJSON(&raw); err != nil {
			apierrors.BadRequest(c, "invalid JSON body", err)
			return
		}

		// only schema-declared fields pass through to the engine
		input := toolkit.Input{}

		for _, field := range def.Fields {
			if value, present := raw[field.Name]; present {
				input[field.Name] = fieldValue(value)
			}
		}

		// required fields are checked before any policy or engine work
		for _, field := range def.Fields {
			if field.Required && input.Get(field.Name) == "" {
				apierrors.ValidationError(c, field.Label+" is required")
				return
			}
		}

		userID, isAuthenticated := auth.GetUserID(c)

		var decision quota.Decision

		if isAuthenticated {
			profile, err := loadProfile(c, profileStore, userID)
			if err != nil {
				// fail closed: no admission without a consulted plan
				apierrors.StoreUnavailable(c, "failed to load profile", err)
				return
			}

			decision, err = policy.Decide(c.Request.Context(), userID, profile.Plan, time.Now())
			if err != nil {
				apierrors.StoreUnavailable(c, "failed to check usage", err)
				return
			}

			if !decision.Allowed {
				apierrors.LimitReached(c, "")
				return
			}
		}

		output, err := def.Generate(input)
		if err != nil {
			// generator errors indicate catalog bugs, not bad input
			apierrors.InternalError(c, "generation failed", err)
			return
		}

		saved := false

		if isAuthenticated {
			// history is best-effort audit: the generation already
			// succeeded and was counted, so a write failure must not
			// fail the request
			if _, err := runRecorder.Create(c.Request.Context(), userID, slug, input, output); err != nil {
				logger.ErrorErr(err, "failed to record tool run",
					"tool", slug,
					"user_id", userID,
				)
			} else {
				saved = true
			}
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := events.ToolUsed(ctx, slug, userID); err != nil {
				logger.Warn("tool_used event not delivered", "tool", slug, "error", err)
			}
		}()

		resp := GenerateResponse{Output: output, Saved: saved}

		if isAuthenticated {
			remaining := decision.Remaining
			resp.RemainingUses = &remaining
		}

		c.JSON(http.StatusOK, resp)
	}
}

// loads the caller's profile, provisioning a free-plan one on first
// authenticated action
func loadProfile(c *gin.Context, store ProfileStore, userID string) (*profiles.Profile, error) {
	profile, err := store.FindByID(c.Request.Context(), userID)

	if errors.Is(err, profiles.ErrProfileNotFound) {
		return store.Provision(c.Request.Context(), userID, c.GetString("user_email"))
	}

	return profile, err
}

// renders a JSON field value as engine input; numbers arrive as float64
func fieldValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
