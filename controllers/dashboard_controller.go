package controllers

import (
	"net/http"

	"clinic-portal/middleware"
	"clinic-portal/models"
	"clinic-portal/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// GetDashboard godoc
// @Summary Patient home view
// @Description Upcoming bookings, recent orders and record count in one call
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /dashboard [get]
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	session, _ := middleware.GetSession(c)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    ctrl.dashboard.Load(c.Request.Context(), session),
	})
}
