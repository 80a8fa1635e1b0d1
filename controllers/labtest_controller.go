package controllers

import (
	"net/http"
	"strconv"

	"clinic-portal/middleware"
	"clinic-portal/models"
	"clinic-portal/services"

	"github.com/gin-gonic/gin"
)

type LabTestController struct {
	labTests *services.LabTestService
}

func NewLabTestController(labTests *services.LabTestService) *LabTestController {
	return &LabTestController{labTests: labTests}
}

// GetLabTests godoc
// @Summary List own lab test bookings
// @Tags Lab Tests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /lab-tests [get]
func (ctrl *LabTestController) GetLabTests(c *gin.Context) {
	session, _ := middleware.GetSession(c)

	tests, err := ctrl.labTests.List(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: tests})
}

// CreateLabTest godoc
// @Summary Book a lab test
// @Tags Lab Tests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateLabTestRequest true "Lab Test Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /lab-tests [post]
func (ctrl *LabTestController) CreateLabTest(c *gin.Context) {
	var req models.CreateLabTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	session, _ := middleware.GetSession(c)

	test, err := ctrl.labTests.Book(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Lab test booked",
		Data:    test,
	})
}

// CancelLabTest godoc
// @Summary Cancel a lab test booking
// @Tags Lab Tests
// @Security BearerAuth
// @Produce json
// @Param id path int true "Lab Test ID"
// @Success 200 {object} models.Response
// @Router /lab-tests/{id}/cancel [patch]
func (ctrl *LabTestController) CancelLabTest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid lab test id"})
		return
	}

	session, _ := middleware.GetSession(c)

	test, err := ctrl.labTests.Cancel(c.Request.Context(), session, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Lab test cancelled",
		Data:    test,
	})
}
