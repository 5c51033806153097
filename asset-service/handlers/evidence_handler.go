package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"assetdesk-backend/asset-service/middleware"
	"assetdesk-backend/asset-service/services"
	"assetdesk-backend/shared/database"
	"assetdesk-backend/shared/database/models/file"
	fileUtils "assetdesk-backend/shared/utils/file"
)

// GetEvidences lists uploaded evidences
// @Summary List evidences
// @Description List installation evidence photos, newest first
// @Tags evidences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of evidences"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /evidences [get]
func GetEvidences(ctx *gin.Context) {
	db := database.GetDB()

	if _, ok := middleware.CurrentUserID(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var evidences []file.Evidence
	if err := db.Order("uploaded_at DESC").Find(&evidences).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch evidences"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    evidences,
	})
}

// UploadEvidence uploads an evidence photo
// @Summary Upload evidence
// @Description Upload an installation evidence photo to blob storage
// @Tags evidences
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Evidence photo"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Evidence uploaded"
// @Failure 400 {object} map[string]string "Invalid request data"
// @Failure 500 {object} map[string]string "Server error"
// @Router /evidences [post]
func UploadEvidence(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	upload, header, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	defer upload.Close()

	if err := fileUtils.ValidateUploadedFile(header); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storage, err := services.NewStorageService()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Storage service unavailable"})
		return
	}

	objectKey := fileUtils.GenerateStorageKey(header.Filename)

	if err := storage.UploadObject(context.Background(), upload, objectKey, header.Size, header.Header.Get("Content-Type")); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload evidence"})
		return
	}

	evidence := file.Evidence{
		Name:       header.Filename,
		URL:        storage.FileURL(objectKey),
		ObjectKey:  objectKey,
		Size:       header.Size,
		UploadedBy: userID,
	}

	if err := db.Create(&evidence).Error; err != nil {
		if cleanupErr := storage.RemoveObject(context.Background(), objectKey); cleanupErr != nil {
			log.Printf("❌ Failed to clean up blob after insert failure: %v", cleanupErr)
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save evidence metadata"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Evidence uploaded successfully",
		"data":    evidence,
	})
}

// DeleteEvidence deletes an evidence photo
// @Summary Delete evidence
// @Description Delete an evidence blob and its metadata. Only the uploader may delete.
// @Tags evidences
// @Accept json
// @Produce json
// @Param id path string true "Evidence ID" format(uuid)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Evidence deleted"
// @Failure 403 {object} map[string]string "Caller is not the uploader"
// @Failure 404 {object} map[string]string "Evidence not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /evidences/{id} [delete]
func DeleteEvidence(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var evidence file.Evidence
	if err := db.First(&evidence, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Evidence not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch evidence"})
		return
	}

	if evidence.UploadedBy != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the uploader can delete this evidence"})
		return
	}

	storage, err := services.NewStorageService()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Storage service unavailable"})
		return
	}

	if err := storage.RemoveObject(context.Background(), evidence.ObjectKey); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete evidence from storage"})
		return
	}

	if err := db.Delete(&evidence).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete evidence metadata"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Evidence deleted successfully",
	})
}
