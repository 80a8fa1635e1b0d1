package controllers

import (
	"errors"
	"net/http"

	"clinic-portal/clients"
	"clinic-portal/models"
	"clinic-portal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service/client errors onto the shared JSON envelope.
// Backend rejections keep their status, transport problems become a 502,
// everything else is the caller's fault.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLoginRequired):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: "Please log in to continue",
			Code:    "login_required",
		})
	case errors.Is(err, clients.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: "Session expired. Please log in again",
			Code:    "login_required",
		})
	case errors.Is(err, clients.ErrBackendUnavailable):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "Clinic services are temporarily unavailable. Please try again later",
		})
	default:
		var apiErr *clients.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, models.ErrorResponse{
				Success: false,
				Message: apiErr.Message,
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}
}
