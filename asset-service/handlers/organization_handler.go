package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"assetdesk-backend/asset-service/middleware"
	"assetdesk-backend/shared/database"
	"assetdesk-backend/shared/database/models"
	"assetdesk-backend/shared/database/models/file"
	"assetdesk-backend/shared/utils/query"
)

// CreateOrganizationRequest represents request body for creating organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`
	Size        string `json:"size"`
}

// UpdateOrganizationRequest represents request body for updating organization
type UpdateOrganizationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Industry    *string `json:"industry"`
	Website     *string `json:"website"`
	Size        *string `json:"size"`
}

// GetOrganizations retrieves the caller's organizations
// @Summary Get organizations
// @Description Get the caller's organizations with pagination, sorting and search
// @Tags organizations
// @Accept json
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20)"
// @Param search query string false "Search term across name and industry"
// @Param sort[field] query string false "Sort field (name, created_at, updated_at)"
// @Param sort[order] query string false "Sort order (asc, desc)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of organizations"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /organizations [get]
func GetOrganizations(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	params := query.ParseQueryParams(ctx)

	dbQuery := db.Model(&models.Organization{}).Where("owner_id = ?", userID)
	dbQuery = query.ApplyFilters(dbQuery, params.Filters, map[string]string{
		"industry": "industry",
		"size":     "size",
	})
	dbQuery = query.ApplySearch(dbQuery, params.Search, []string{"name", "industry"})

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to count organizations",
			"message": err.Error(),
		})
		return
	}

	dbQuery = query.ApplySort(dbQuery, params.Sort, map[string]string{
		"name":       "name",
		"created_at": "created_at",
		"updated_at": "updated_at",
	})
	dbQuery = query.ApplyPagination(dbQuery, params.Page, params.Limit)

	var organizations []models.Organization
	if err := dbQuery.Find(&organizations).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to retrieve organizations",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       organizations,
		"pagination": query.BuildPaginationResponse(params.Page, params.Limit, total),
	})
}

// CreateOrganization creates a new organization
// @Summary Create organization
// @Description Create a new organization owned by the caller
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body handlers.CreateOrganizationRequest true "Organization data"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Organization created"
// @Failure 400 {object} map[string]string "Invalid request data"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /organizations [post]
func CreateOrganization(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CreateOrganizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Organization name is required"})
		return
	}

	org := models.Organization{
		Name:        req.Name,
		Description: req.Description,
		Industry:    req.Industry,
		Website:     req.Website,
		Size:        req.Size,
		OwnerID:     userID,
	}

	if err := db.Create(&org).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create organization",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Organization created successfully",
		"data":    org,
	})
}

// UpdateOrganization updates an organization
// @Summary Update organization
// @Description Partially update an organization. Only the owner may update.
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID" format(uuid)
// @Param organization body handlers.UpdateOrganizationRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Organization updated"
// @Failure 400 {object} map[string]string "Invalid request data"
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /organizations/{id} [put]
func UpdateOrganization(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var org models.Organization
	if err := db.First(&org, "id = ? AND owner_id = ?", ctx.Param("id"), userID).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return
	}

	var req UpdateOrganizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Organization name cannot be empty"})
			return
		}
		org.Name = name
	}
	if req.Description != nil {
		org.Description = *req.Description
	}
	if req.Industry != nil {
		org.Industry = *req.Industry
	}
	if req.Website != nil {
		org.Website = *req.Website
	}
	if req.Size != nil {
		org.Size = *req.Size
	}

	if err := db.Save(&org).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update organization",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Organization updated successfully",
		"data":    org,
	})
}

// DeleteOrganization deletes an organization
// @Summary Delete organization
// @Description Hard delete an organization. Only the owner may delete. Fails when files still reference it.
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID" format(uuid)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Organization deleted"
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 409 {object} map[string]string "Organization still has dependent records"
// @Failure 500 {object} map[string]string "Server error"
// @Router /organizations/{id} [delete]
func DeleteOrganization(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var org models.Organization
	if err := db.First(&org, "id = ? AND owner_id = ?", ctx.Param("id"), userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch organization"})
		return
	}

	var fileCount int64
	if err := db.Model(&file.FileRecord{}).Where("organization_id = ?", org.ID).Count(&fileCount).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check dependent files"})
		return
	}
	if fileCount > 0 {
		ctx.JSON(http.StatusConflict, gin.H{
			"error":   "Organization still has files",
			"message": "Delete or reassign the organization's files first",
		})
		return
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", org.ID).Delete(&models.Invitation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&org).Error
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete organization",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Organization deleted successfully",
	})
}
