package insights

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"healthlog-backend/internal/shared/server/respond"
)

// Handler exposes read-back endpoints for persisted flags and summaries.
// There are intentionally no write routes: rows are created by the analysis
// engine only.
type Handler struct {
	Flags     FlagsRepo
	Summaries SummariesRepo
}

// NewHandler constructs a Handler.
func NewHandler(flags FlagsRepo, summaries SummariesRepo) *Handler {
	return &Handler{Flags: flags, Summaries: summaries}
}

// RegisterRoutes attaches insight routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/flags", h.listFlags)
	rg.GET("/summaries", h.listSummaries)
}

func (h *Handler) listFlags(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user_id is required", nil)
		return
	}
	flags, err := h.Flags.ListByUser(c.Request.Context(), userID, parseLimit(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list flags", nil)
		return
	}
	if flags == nil {
		flags = []AIFlag{}
	}
	respond.OK(c, flags)
}

func (h *Handler) listSummaries(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user_id is required", nil)
		return
	}
	summaries, err := h.Summaries.ListByUser(c.Request.Context(), userID, parseLimit(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list summaries", nil)
		return
	}
	if summaries == nil {
		summaries = []AISummary{}
	}
	respond.OK(c, summaries)
}

func parseLimit(c *gin.Context) int {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return limit
}
