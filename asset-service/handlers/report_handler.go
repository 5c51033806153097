package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"assetdesk-backend/asset-service/middleware"
	"assetdesk-backend/shared/database"
	"assetdesk-backend/shared/database/models"
)

// ReportConfigRequest represents request body for saving a report layout
type ReportConfigRequest struct {
	Name     string   `json:"name" binding:"required"`
	Sections []string `json:"sections" binding:"required"`
}

// GetReports lists the caller's saved report layouts
// @Summary List report configs
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of report configs"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /reports [get]
func GetReports(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var reports []models.ReportConfig
	if err := db.Where("created_by = ?", userID).Order("created_at DESC").Find(&reports).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report configs"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reports,
	})
}

// CreateReport saves a report layout
// @Summary Create report config
// @Description Save a named report layout with its ordered sections
// @Tags reports
// @Accept json
// @Produce json
// @Param report body handlers.ReportConfigRequest true "Report layout"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Report config created"
// @Failure 400 {object} map[string]string "Invalid request data"
// @Failure 500 {object} map[string]string "Server error"
// @Router /reports [post]
func CreateReport(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req ReportConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Report name is required"})
		return
	}
	if len(req.Sections) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "At least one section is required"})
		return
	}

	report := models.ReportConfig{
		Name:      req.Name,
		Sections:  strings.Join(req.Sections, ","),
		CreatedBy: userID,
	}

	if err := db.Create(&report).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create report config",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Report config created successfully",
		"data":    report,
	})
}

// DeleteReport deletes a saved report layout
// @Summary Delete report config
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report config ID" format(uuid)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Report config deleted"
// @Failure 404 {object} map[string]string "Report config not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /reports/{id} [delete]
func DeleteReport(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var report models.ReportConfig
	if err := db.First(&report, "id = ? AND created_by = ?", ctx.Param("id"), userID).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Report config not found"})
		return
	}

	if err := db.Delete(&report).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete report config",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Report config deleted successfully",
	})
}
