package analysis

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthlog-backend/internal/shared/server/respond"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, extra ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, extra...), h.Run)
	rg.POST("/analysis", handlers...)
}

type runRequest struct {
	UserID string `json:"user_id"`
	LogID  string `json:"log_id"`
}

// Run handles POST /analysis.
func (h *Handler) Run(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "request body must be valid JSON", nil)
		return
	}

	result, err := h.Service.Run(c.Request.Context(), req.UserID, req.LogID)
	if err != nil {
		var upstream *UpstreamError
		switch {
		case errors.Is(err, ErrUserIDRequired):
			respond.Error(c, http.StatusBadRequest, "invalid_request", "user_id is required", nil)
		case errors.As(err, &upstream):
			respond.Error(c, http.StatusInternalServerError, "analysis_failed", upstream.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "analysis_failed", "analysis failed", nil)
		}
		return
	}

	respond.OK(c, result)
}
