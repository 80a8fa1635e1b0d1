package controllers

import (
	"net/http"

	"clinic-portal/data"
	"clinic-portal/models"

	"github.com/gin-gonic/gin"
)

// ClinicController serves the static clinic catalog. No backend call is
// involved, the content ships with the portal.
type ClinicController struct{}

func NewClinicController() *ClinicController {
	return &ClinicController{}
}

// GetServices godoc
// @Summary List clinic services
// @Tags Clinic
// @Produce json
// @Success 200 {object} models.Response
// @Router /clinic/services [get]
func (ctrl *ClinicController) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Data: data.Services})
}

// GetServiceByID godoc
// @Summary Get one clinic service
// @Tags Clinic
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /clinic/services/{id} [get]
func (ctrl *ClinicController) GetServiceByID(c *gin.Context) {
	service, ok := data.ServiceByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Service not found"})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Data: service})
}

// GetDoctors godoc
// @Summary List clinic doctors
// @Tags Clinic
// @Produce json
// @Success 200 {object} models.Response
// @Router /clinic/doctors [get]
func (ctrl *ClinicController) GetDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Data: data.Doctors()})
}

// GetLabTestMenu godoc
// @Summary List individual lab tests
// @Tags Clinic
// @Produce json
// @Success 200 {object} models.Response
// @Router /clinic/lab-tests [get]
func (ctrl *ClinicController) GetLabTestMenu(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Data: data.LabTests})
}

// GetTestPackages godoc
// @Summary List lab test packages
// @Tags Clinic
// @Produce json
// @Success 200 {object} models.Response
// @Router /clinic/test-packages [get]
func (ctrl *ClinicController) GetTestPackages(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Data: data.TestPackages})
}

// GetTestPackageByID godoc
// @Summary Get one lab test package
// @Tags Clinic
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /clinic/test-packages/{id} [get]
func (ctrl *ClinicController) GetTestPackageByID(c *gin.Context) {
	pkg, ok := data.PackageByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Package not found"})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Data: pkg})
}
