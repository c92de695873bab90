package familyhistory

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthlog-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the family history service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches family history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/family-history", h.createEntry)
	rg.GET("/family-history", h.listEntries)
	rg.GET("/family-history/:id", h.getEntry)
	rg.PUT("/family-history/:id", h.updateEntry)
	rg.DELETE("/family-history/:id", h.deleteEntry)
}

type entryRequest struct {
	UserID          string `json:"user_id"`
	ConditionName   string `json:"condition_name"`
	Relationship    string `json:"relationship"`
	AgeOfOnset      *int   `json:"age_of_onset"`
	Notes           string `json:"notes"`
	ConfidenceLevel string `json:"confidence_level"`
}

func (req entryRequest) toInput() CreateInput {
	return CreateInput{
		UserID:          req.UserID,
		ConditionName:   req.ConditionName,
		Relationship:    req.Relationship,
		AgeOfOnset:      req.AgeOfOnset,
		Notes:           req.Notes,
		ConfidenceLevel: req.ConfidenceLevel,
	}
}

func (h *Handler) createEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	entry, err := h.Svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.Created(c, entry)
}

func (h *Handler) getEntry(c *gin.Context) {
	entry, err := h.Svc.Get(c.Request.Context(), c.Query("user_id"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "family history entry not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, entry)
}

func (h *Handler) listEntries(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user_id is required", nil)
		return
	}
	entries, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list family history", nil)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	respond.OK(c, entries)
}

func (h *Handler) updateEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	entry, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "family history entry not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, entry)
}

func (h *Handler) deleteEntry(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Query("user_id"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "family history entry not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}
