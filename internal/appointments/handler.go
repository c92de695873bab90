package appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"healthlog-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the appointments service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches appointment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/appointments", h.createAppointment)
	rg.GET("/appointments", h.listAppointments)
	rg.GET("/appointments/:id", h.getAppointment)
	rg.PUT("/appointments/:id", h.updateAppointment)
	rg.DELETE("/appointments/:id", h.deleteAppointment)
}

type appointmentRequest struct {
	UserID           string    `json:"user_id"`
	AppointmentDate  time.Time `json:"appointment_date"`
	DoctorName       string    `json:"doctor_name"`
	Specialty        string    `json:"specialty"`
	ReasonForVisit   string    `json:"reason_for_visit"`
	Diagnosis        string    `json:"diagnosis"`
	DoctorNotes      string    `json:"doctor_notes"`
	FollowUpRequired *bool     `json:"follow_up_required"`
}

func (req appointmentRequest) toInput() CreateInput {
	return CreateInput{
		UserID:           req.UserID,
		AppointmentDate:  req.AppointmentDate,
		DoctorName:       req.DoctorName,
		Specialty:        req.Specialty,
		ReasonForVisit:   req.ReasonForVisit,
		Diagnosis:        req.Diagnosis,
		DoctorNotes:      req.DoctorNotes,
		FollowUpRequired: req.FollowUpRequired,
	}
}

func (h *Handler) createAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	appt, err := h.Svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.Created(c, appt)
}

func (h *Handler) getAppointment(c *gin.Context) {
	appt, err := h.Svc.Get(c.Request.Context(), c.Query("user_id"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "appointment not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, appt)
}

func (h *Handler) listAppointments(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user_id is required", nil)
		return
	}
	entries, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list appointments", nil)
		return
	}
	if entries == nil {
		entries = []Appointment{}
	}
	respond.OK(c, entries)
}

func (h *Handler) updateAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	appt, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "appointment not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, appt)
}

func (h *Handler) deleteAppointment(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Query("user_id"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "appointment not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}
