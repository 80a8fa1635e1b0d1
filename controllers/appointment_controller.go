package controllers

import (
	"net/http"
	"strconv"

	"clinic-portal/middleware"
	"clinic-portal/models"
	"clinic-portal/services"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	appointments *services.AppointmentService
}

func NewAppointmentController(appointments *services.AppointmentService) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

// GetAppointments godoc
// @Summary List own appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /appointments [get]
func (ctrl *AppointmentController) GetAppointments(c *gin.Context) {
	session, _ := middleware.GetSession(c)

	appts, err := ctrl.appointments.List(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: appts})
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateAppointmentRequest true "Appointment Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /appointments [post]
func (ctrl *AppointmentController) CreateAppointment(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	session, _ := middleware.GetSession(c)

	appt, err := ctrl.appointments.Book(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Appointment booked",
		Data:    appt,
	})
}

// CancelAppointment godoc
// @Summary Cancel an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Response
// @Router /appointments/{id}/cancel [patch]
func (ctrl *AppointmentController) CancelAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid appointment id"})
		return
	}

	session, _ := middleware.GetSession(c)

	appt, err := ctrl.appointments.Cancel(c.Request.Context(), session, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Appointment cancelled",
		Data:    appt,
	})
}
