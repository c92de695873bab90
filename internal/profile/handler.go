package profile

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"healthlog-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the profile repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile/:userID", h.getProfile)
	rg.PUT("/profile/:userID", h.putProfile)
}

func (h *Handler) getProfile(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userID"))
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user id is required", nil)
		return
	}
	p, err := h.Repo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		}
		return
	}
	respond.OK(c, p)
}

func (h *Handler) putProfile(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userID"))
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user id is required", nil)
		return
	}
	var p HealthProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	p.UserID = userID
	p.UpdatedAt = time.Now().UTC()
	if err := h.Repo.Upsert(c.Request.Context(), p); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		return
	}
	respond.OK(c, p)
}
