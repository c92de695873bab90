package logs

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"healthlog-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the logs service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches log routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/logs", h.createLog)
	rg.GET("/logs", h.listLogs)
	rg.GET("/logs/:id", h.getLog)
	rg.PUT("/logs/:id", h.updateLog)
	rg.DELETE("/logs/:id", h.deleteLog)
}

type logRequest struct {
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BodyParts   []string  `json:"body_parts"`
	Severity    *int      `json:"severity"`
	Date        time.Time `json:"date"`
}

func (h *Handler) createLog(c *gin.Context) {
	var req logRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	log, err := h.Svc.Create(c.Request.Context(), CreateInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		BodyParts:   req.BodyParts,
		Severity:    req.Severity,
		Date:        req.Date,
	})
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	c.Set("logId", log.ID)
	respond.Created(c, log)
}

func (h *Handler) getLog(c *gin.Context) {
	userID := c.Query("user_id")
	logID := c.Param("id")
	log, err := h.Svc.Get(c.Request.Context(), userID, logID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "log not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, log)
}

func (h *Handler) listLogs(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user_id is required", nil)
		return
	}
	entries, err := h.Svc.ListWindow(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list logs", nil)
		return
	}
	if entries == nil {
		entries = []HealthLog{}
	}
	respond.OK(c, entries)
}

func (h *Handler) updateLog(c *gin.Context) {
	var req logRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	log, err := h.Svc.Update(c.Request.Context(), c.Param("id"), CreateInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		BodyParts:   req.BodyParts,
		Severity:    req.Severity,
		Date:        req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "log not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, log)
}

func (h *Handler) deleteLog(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Query("user_id"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "log not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}
