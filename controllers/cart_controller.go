package controllers

import (
	"errors"
	"net/http"

	"clinic-portal/clients"
	"clinic-portal/middleware"
	"clinic-portal/models"
	"clinic-portal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	cartCookieName   = "cart_session"
	cartCookieMaxAge = 30 * 24 * 60 * 60
)

type CartController struct {
	carts     *services.CartStore
	medicines *services.MedicineService
	checkout  *services.CheckoutService
}

func NewCartController(carts *services.CartStore, medicines *services.MedicineService, checkout *services.CheckoutService) *CartController {
	return &CartController{carts: carts, medicines: medicines, checkout: checkout}
}

// cartKey reads the visitor's cart cookie, issuing a fresh one on first
// contact. The key is opaque and unrelated to authentication.
func (ctrl *CartController) cartKey(c *gin.Context) string {
	if key, err := c.Cookie(cartCookieName); err == nil && key != "" {
		return key
	}
	key := uuid.NewString()
	c.SetCookie(cartCookieName, key, cartCookieMaxAge, "/", "", false, true)
	return key
}

// GetCart godoc
// @Summary Get current cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.carts.Get(ctrl.cartKey(c))
	c.JSON(http.StatusOK, models.Response{Success: true, Data: cart})
}

// AddItem godoc
// @Summary Add a medicine to the cart
// @Description Adds one unit; adding the same medicine again increases quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Add Item Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	// Snapshot name/price/image at add time; later catalog changes don't
	// touch items already in the cart.
	medicine, err := ctrl.medicines.GetByID(c.Request.Context(), req.MedicineID)
	if err != nil {
		var apiErr *clients.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Medicine not found"})
			return
		}
		respondError(c, err)
		return
	}

	cart := ctrl.carts.Add(ctrl.cartKey(c), medicine)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: medicine.Name + " added to cart",
		Data:    cart,
	})
}

// UpdateItem godoc
// @Summary Set the quantity of a cart line item
// @Description Quantity 0 or below removes the item
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Medicine ID"
// @Param request body models.UpdateCartItemRequest true "Update Quantity Request"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	cart := ctrl.carts.SetQuantity(ctrl.cartKey(c), c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, models.Response{Success: true, Data: cart})
}

// RemoveItem godoc
// @Summary Remove a line item from the cart
// @Tags Cart
// @Produce json
// @Param id path string true "Medicine ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart := ctrl.carts.Remove(ctrl.cartKey(c), c.Param("id"))
	c.JSON(http.StatusOK, models.Response{Success: true, Data: cart})
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	key := ctrl.cartKey(c)
	ctrl.carts.Clear(key)
	c.JSON(http.StatusOK, models.Response{Success: true, Data: ctrl.carts.Get(key)})
}

// Checkout godoc
// @Summary Place one pharmacy order per cart item
// @Description Orders are created sequentially; on failure the cart is kept as-is
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	session, _ := middleware.GetSession(c)

	result, err := ctrl.checkout.Submit(c.Request.Context(), session, ctrl.cartKey(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoginRequired):
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Please log in to place your order",
				Code:    "login_required",
			})
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Your cart is empty"})
		default:
			status := http.StatusBadRequest
			if errors.Is(err, clients.ErrBackendUnavailable) {
				status = http.StatusBadGateway
			}
			c.JSON(status, gin.H{
				"success":        false,
				"message":        "Failed to place order. Please try again.",
				"orders_created": result.OrdersCreated,
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order placed successfully! Our team will contact you for payment and delivery.",
		Data:    result,
	})
}
