package controllers

import (
	"net/http"
	"strconv"

	"clinic-portal/models"
	"clinic-portal/services"

	"github.com/gin-gonic/gin"
)

type MedicineController struct {
	medicines *services.MedicineService
}

func NewMedicineController(medicines *services.MedicineService) *MedicineController {
	return &MedicineController{medicines: medicines}
}

// GetAllMedicines godoc
// @Summary List medicines
// @Description List the pharmacy catalog, optionally filtered
// @Tags Pharmacy
// @Produce json
// @Param category query string false "Filter by category"
// @Param search query string false "Search by name"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param in_stock query bool false "Only in-stock medicines"
// @Success 200 {object} models.Response
// @Router /medicines [get]
func (ctrl *MedicineController) GetAllMedicines(c *gin.Context) {
	filter := models.MedicineFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	filter.MinPrice, _ = strconv.ParseFloat(c.Query("min_price"), 64)
	filter.MaxPrice, _ = strconv.ParseFloat(c.Query("max_price"), 64)
	if raw := c.Query("in_stock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err == nil {
			filter.InStock = &inStock
		}
	}

	medicines, err := ctrl.medicines.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Medicines retrieved",
		Data:    medicines,
	})
}

// GetMedicineByID godoc
// @Summary Get one medicine
// @Tags Pharmacy
// @Produce json
// @Param id path string true "Medicine ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /medicines/{id} [get]
func (ctrl *MedicineController) GetMedicineByID(c *gin.Context) {
	medicine, err := ctrl.medicines.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: medicine})
}

// GetCategories godoc
// @Summary List medicine categories
// @Tags Pharmacy
// @Produce json
// @Success 200 {object} models.Response
// @Router /medicines/categories [get]
func (ctrl *MedicineController) GetCategories(c *gin.Context) {
	categories, err := ctrl.medicines.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: categories})
}
