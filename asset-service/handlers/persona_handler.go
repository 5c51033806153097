package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"assetdesk-backend/asset-service/middleware"
	"assetdesk-backend/shared/database"
	"assetdesk-backend/shared/database/models"
	utils "assetdesk-backend/shared/utils/auth"
)

// PersonaRequest represents request body for creating or updating a persona
type PersonaRequest struct {
	Name string `json:"name" binding:"required"`
	Link string `json:"link"`
}

// GetPersonas lists the caller's personas
// @Summary List personas
// @Description List the caller's personas. Archived personas are included when include_archived=true.
// @Tags personas
// @Accept json
// @Produce json
// @Param include_archived query bool false "Include archived personas"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of personas"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /personas [get]
func GetPersonas(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	dbQuery := db.Where("owner_id = ?", userID)
	if ctx.Query("include_archived") != "true" {
		dbQuery = dbQuery.Where("archived = ?", false)
	}

	var personas []models.Persona
	if err := dbQuery.Order("created_at DESC").Find(&personas).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch personas"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    personas,
	})
}

// CreatePersona creates a new persona
// @Summary Create persona
// @Description Create a new persona owned by the caller
// @Tags personas
// @Accept json
// @Produce json
// @Param persona body handlers.PersonaRequest true "Persona data"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Persona created"
// @Failure 400 {object} map[string]string "Invalid request data"
// @Failure 500 {object} map[string]string "Server error"
// @Router /personas [post]
func CreatePersona(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req PersonaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Persona name is required"})
		return
	}

	if err := utils.ValidateLink(req.Link); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	persona := models.Persona{
		Name:    req.Name,
		Link:    req.Link,
		OwnerID: userID,
	}

	if err := db.Create(&persona).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create persona",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Persona created successfully",
		"data":    persona,
	})
}

// UpdatePersona updates a persona
// @Summary Update persona
// @Description Update a persona's name and link. Only the owner may update.
// @Tags personas
// @Accept json
// @Produce json
// @Param id path string true "Persona ID" format(uuid)
// @Param persona body handlers.PersonaRequest true "Persona data"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Persona updated"
// @Failure 400 {object} map[string]string "Invalid request data"
// @Failure 404 {object} map[string]string "Persona not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /personas/{id} [put]
func UpdatePersona(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var persona models.Persona
	if err := db.First(&persona, "id = ? AND owner_id = ?", ctx.Param("id"), userID).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Persona not found"})
		return
	}

	var req PersonaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Persona name is required"})
		return
	}

	if err := utils.ValidateLink(req.Link); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	persona.Name = req.Name
	persona.Link = req.Link

	if err := db.Save(&persona).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update persona",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Persona updated successfully",
		"data":    persona,
	})
}

// ArchivePersona archives a persona
// @Summary Archive persona
// @Description Archive a persona so it drops out of default listings
// @Tags personas
// @Accept json
// @Produce json
// @Param id path string true "Persona ID" format(uuid)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Persona archived"
// @Failure 404 {object} map[string]string "Persona not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /personas/{id}/archive [post]
func ArchivePersona(ctx *gin.Context) {
	setPersonaArchived(ctx, true, "Persona archived successfully")
}

// RestorePersona restores an archived persona
// @Summary Restore persona
// @Description Restore an archived persona back into default listings
// @Tags personas
// @Accept json
// @Produce json
// @Param id path string true "Persona ID" format(uuid)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Persona restored"
// @Failure 404 {object} map[string]string "Persona not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /personas/{id}/restore [post]
func RestorePersona(ctx *gin.Context) {
	setPersonaArchived(ctx, false, "Persona restored successfully")
}

func setPersonaArchived(ctx *gin.Context, archived bool, message string) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var persona models.Persona
	if err := db.First(&persona, "id = ? AND owner_id = ?", ctx.Param("id"), userID).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Persona not found"})
		return
	}

	if err := db.Model(&persona).Update("archived", archived).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update persona",
			"message": err.Error(),
		})
		return
	}

	persona.Archived = archived
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    persona,
	})
}
