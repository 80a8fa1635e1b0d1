package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-portal/middleware"
	"clinic-portal/models"
	"clinic-portal/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// GetOrders godoc
// @Summary List own pharmacy orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	session, _ := middleware.GetSession(c)

	orders, err := ctrl.orders.List(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: orders})
}

// GetOrderByID godoc
// @Summary Get one pharmacy order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid order id"})
		return
	}

	session, _ := middleware.GetSession(c)

	order, err := ctrl.orders.GetByID(c.Request.Context(), session, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: order})
}

// CancelOrder godoc
// @Summary Cancel a pending pharmacy order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders/{id}/cancel [patch]
func (ctrl *OrderController) CancelOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid order id"})
		return
	}

	session, _ := middleware.GetSession(c)

	order, err := ctrl.orders.Cancel(c.Request.Context(), session, id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotCancellable) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Only pending orders can be cancelled",
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order cancelled",
		Data:    order,
	})
}
