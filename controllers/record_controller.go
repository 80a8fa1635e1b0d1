package controllers

import (
	"net/http"
	"strconv"

	"clinic-portal/middleware"
	"clinic-portal/models"
	"clinic-portal/services"
	"clinic-portal/utils"

	"github.com/gin-gonic/gin"
)

type RecordController struct {
	records *services.RecordService
}

func NewRecordController(records *services.RecordService) *RecordController {
	return &RecordController{records: records}
}

// GetRecords godoc
// @Summary List own medical records
// @Tags Medical Records
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /medical-records [get]
func (ctrl *RecordController) GetRecords(c *gin.Context) {
	session, _ := middleware.GetSession(c)

	records, err := ctrl.records.List(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: records})
}

// GetRecordByID godoc
// @Summary Get one medical record
// @Tags Medical Records
// @Security BearerAuth
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /medical-records/{id} [get]
func (ctrl *RecordController) GetRecordByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid record id"})
		return
	}

	session, _ := middleware.GetSession(c)

	record, err := ctrl.records.GetByID(c.Request.Context(), session, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: record})
}

// UploadRecord godoc
// @Summary Upload a medical record document
// @Tags Medical Records
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document (pdf, jpg, jpeg, png)"
// @Param title formData string true "Record title"
// @Param description formData string false "Record description"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /medical-records [post]
func (ctrl *RecordController) UploadRecord(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "File is required"})
		return
	}

	localPath, fileType, err := utils.UploadFile(c, fileHeader, "records")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	session, _ := middleware.GetSession(c)

	record, err := ctrl.records.Upload(
		c.Request.Context(),
		session,
		localPath,
		fileType,
		c.PostForm("title"),
		c.PostForm("description"),
	)
	if err != nil {
		utils.DeleteFile(localPath)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Record uploaded",
		Data:    record,
	})
}

// DeleteRecord godoc
// @Summary Delete a medical record
// @Tags Medical Records
// @Security BearerAuth
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} models.Response
// @Router /medical-records/{id} [delete]
func (ctrl *RecordController) DeleteRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid record id"})
		return
	}

	session, _ := middleware.GetSession(c)

	if err := ctrl.records.Delete(c.Request.Context(), session, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Record deleted"})
}
