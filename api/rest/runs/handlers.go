package runs

import (
	"errors"
	"net/http"
	"strconv"

	"codeberg.org/creatorkit/server/api/rest/pagination"
	"codeberg.org/creatorkit/server/creatorkit/runs"
	apierrors "codeberg.org/creatorkit/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListRunsHandler godoc
// @Summary List the caller's generation history
// @Description Returns the authenticated user's saved tool runs, newest first
// @Tags runs
// @Produce json
// @Param limit query int false "Items per page (default 20, max 100)"
// @Param offset query int false "Offset for pagination"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/runs [get]
// @Security BearerAuth
func ListRunsHandler(runRepo *runs.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		params := pagination.Parse(limit, offset)

		list, total, err := runRepo.List(c.Request.Context(), userID, params.Limit, params.Offset)
		if err != nil {
			apierrors.InternalError(c, "failed to fetch runs", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{
			Runs:       list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetRunHandler godoc
// @Summary Get one saved run
// @Description Returns a single saved tool run owned by the authenticated user
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} runs.Run
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/runs/{id} [get]
// @Security BearerAuth
func GetRunHandler(runRepo *runs.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		run, err := runRepo.Get(c.Request.Context(), c.Param("id"), userID)

		if errors.Is(err, runs.ErrRunNotFound) {
			apierrors.NotFound(c, "run")
			return
		}

		if err != nil {
			apierrors.InternalError(c, "failed to fetch run", err)
			return
		}

		c.JSON(http.StatusOK, run)
	}
}
