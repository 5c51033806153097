package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"assetdesk-backend/asset-service/middleware"
	"assetdesk-backend/asset-service/services"
	"assetdesk-backend/shared/clients"
	"assetdesk-backend/shared/database"
	"assetdesk-backend/shared/database/models/file"
	"assetdesk-backend/shared/utils/cache"
	fileUtils "assetdesk-backend/shared/utils/file"
	"assetdesk-backend/shared/utils/query"
)

// GetFiles lists the caller's files
// @Summary List uploaded files
// @Description List the caller's files with organization and persona names joined
// @Tags files
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param filters[category] query string false "Filter by category"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of files"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /files [get]
func GetFiles(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	params := query.ParseQueryParams(ctx)

	category := params.Filters["category"]
	cacheKey := cache.GenerateFileListKey(userID.String(), category, params.Page, params.Limit)

	if cm := cache.GetCacheManager(); cm != nil {
		if cached, hit := cm.GetFileListCache(cacheKey); hit {
			ctx.JSON(http.StatusOK, gin.H{
				"success":    true,
				"data":       cached.Files,
				"pagination": query.BuildPaginationResponse(params.Page, params.Limit, cached.Total),
			})
			return
		}
	}

	baseQuery := db.Model(&file.FileRecord{}).Where("uploaded_by = ?", userID)
	baseQuery = query.ApplyFilters(baseQuery, params.Filters, map[string]string{
		"category":        "category",
		"organization_id": "organization_id",
		"persona_id":      "persona_id",
	})
	baseQuery = query.ApplySearch(baseQuery, params.Search, []string{"name"})

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count files"})
		return
	}

	var files []file.FileRecord
	listQuery := query.ApplySort(baseQuery, params.Sort, map[string]string{
		"name":       "name",
		"size":       "size",
		"created_at": "created_at",
	})
	listQuery = query.ApplyPagination(listQuery, params.Page, params.Limit)

	if err := listQuery.Preload("Organization").Preload("Persona").Find(&files).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch files"})
		return
	}

	if cm := cache.GetCacheManager(); cm != nil {
		if payload, err := json.Marshal(files); err == nil {
			cm.SetFileListCache(cacheKey, &cache.FileListCacheData{Files: payload, Total: total})
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       files,
		"pagination": query.BuildPaginationResponse(params.Page, params.Limit, total),
	})
}

// UploadFile uploads a new file
// @Summary Upload a file
// @Description Upload a file to blob storage and record its metadata
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param organization_id formData string false "Organization to attach"
// @Param persona_id formData string false "Persona to attach"
// @Param category formData string false "File category"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "File uploaded successfully"
// @Failure 400 {object} map[string]string "Invalid request data"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /files/upload [post]
func UploadFile(ctx *gin.Context) {
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

	var organizationID, personaID *uuid.UUID
	if raw := ctx.PostForm("organization_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization_id"})
			return
		}
		organizationID = &parsed
	}
	if raw := ctx.PostForm("persona_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid persona_id"})
			return
		}
		personaID = &parsed
	}

	category := ctx.PostForm("category")
	if category == "" {
		category = "general"
	}

	storage, err := services.NewStorageService()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Storage service unavailable"})
		return
	}

	objectKey := fileUtils.GenerateStorageKey(header.Filename)
	contentType := header.Header.Get("Content-Type")

	if err := storage.UploadObject(context.Background(), upload, objectKey, header.Size, contentType); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	record := file.FileRecord{
		Name:           header.Filename,
		URL:            storage.FileURL(objectKey),
		ObjectKey:      objectKey,
		Size:           header.Size,
		MimeType:       contentType,
		Category:       category,
		OrganizationID: organizationID,
		PersonaID:      personaID,
		UploadedBy:     userID,
	}

	if err := db.Create(&record).Error; err != nil {
		// Best-effort blob cleanup so the bucket does not accumulate orphans
		if cleanupErr := storage.RemoveObject(context.Background(), objectKey); cleanupErr != nil {
			log.Printf("❌ Failed to clean up blob after insert failure: %v", cleanupErr)
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file metadata"})
		return
	}

	if cm := cache.GetCacheManager(); cm != nil {
		cm.InvalidateUserFiles(userID.String())
	}

	go func(email, fileName string, size int64) {
		client := clients.NewNotificationClient()
		if err := client.SendFileUploadEmail(email, fileName, fileUtils.FormatFileSize(size)); err != nil {
			log.Printf("❌ Failed to send upload confirmation email: %v", err)
		}
	}(middleware.CurrentUserEmail(ctx), record.Name, record.Size)

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "File uploaded successfully",
		"data":    record,
	})
}

// DownloadFile streams a file from blob storage
// @Summary Download a file
// @Description Stream the stored file content
// @Tags files
// @Accept json
// @Produce application/octet-stream
// @Param id path string true "File ID" format(uuid)
// @Security BearerAuth
// @Success 200 {file} file "File content"
// @Failure 404 {object} map[string]string "File not found"
// @Failure 500 {object} map[string]string "Server error or storage unavailable"
// @Router /files/{id}/download [get]
func DownloadFile(ctx *gin.Context) {
	db := database.GetDB()

	var record file.FileRecord
	if err := db.First(&record, "id = ?", ctx.Param("id")).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	storage, err := services.NewStorageService()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Storage service unavailable"})
		return
	}

	// The metadata row can outlive the blob, so check before streaming
	if _, err := storage.StatObject(context.Background(), record.ObjectKey); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "File data not found in storage"})
		return
	}

	object, err := storage.GetObject(context.Background(), record.ObjectKey)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file from storage"})
		return
	}
	defer object.Close()

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", record.Name))
	ctx.Header("Content-Type", record.MimeType)
	ctx.Header("Content-Length", fmt.Sprintf("%d", record.Size))

	if _, err := io.Copy(ctx.Writer, object); err != nil {
		log.Printf("❌ Failed to stream file %s: %v", record.ID, err)
	}
}

// DeleteFile deletes a file
// @Summary Delete a file
// @Description Delete the blob and then the metadata row. Only the uploader may delete.
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "File ID" format(uuid)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "File deleted successfully"
// @Failure 403 {object} map[string]string "Caller is not the uploader"
// @Failure 404 {object} map[string]string "File not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /files/{id} [delete]
func DeleteFile(ctx *gin.Context) {
	db := database.GetDB()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var record file.FileRecord
	if err := db.First(&record, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch file"})
		return
	}

	if record.UploadedBy != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the uploader can delete this file"})
		return
	}

	storage, err := services.NewStorageService()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Storage service unavailable"})
		return
	}

	if err := storage.RemoveObject(context.Background(), record.ObjectKey); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file from storage"})
		return
	}

	if err := db.Delete(&record).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file metadata"})
		return
	}

	if cm := cache.GetCacheManager(); cm != nil {
		cm.InvalidateUserFiles(userID.String())
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "File deleted successfully",
	})
}
