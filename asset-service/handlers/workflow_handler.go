package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"assetdesk-backend/asset-service/middleware"
	"assetdesk-backend/asset-service/services"
	"assetdesk-backend/shared/database/models/workflow"
	"assetdesk-backend/shared/utils/cache"
	"assetdesk-backend/shared/utils/query"
)

// CreateWorkflowItemRequest represents request body for creating a workflow item
type CreateWorkflowItemRequest struct {
	Name           string `json:"name" binding:"required"`
	Instructions   string `json:"instructions"`
	FileID         string `json:"file_id"`
	OrganizationID string `json:"organization_id"`
}

// AdvanceWorkflowItemRequest represents request body for advancing a workflow item
type AdvanceWorkflowItemRequest struct {
	Stage string `json:"stage" binding:"required"`
	Note  string `json:"note"`
}

// GetWorkflowItems lists the queue for one stage
// @Summary List workflow items
// @Description List workflow items at a given stage, most recently moved first
// @Tags workflow
// @Accept json
// @Produce json
// @Param stage query string true "Stage (pending, uploaded, authorized, printing, installing, matched)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Stage queue"
// @Failure 400 {object} map[string]string "Unknown stage"
// @Failure 500 {object} map[string]string "Server error"
// @Router /workflow/items [get]
func GetWorkflowItems(ctx *gin.Context) {
	if _, ok := middleware.CurrentUserID(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	stage := workflow.Stage(ctx.Query("stage"))
	if !workflow.IsValidStage(stage) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown or missing stage"})
		return
	}

	params := query.ParseQueryParams(ctx)
	offset := (params.Page - 1) * params.Limit

	svc := services.NewWorkflowService()
	items, total, err := svc.ListByStage(stage, params.Limit, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workflow items"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       items,
		"pagination": query.BuildPaginationResponse(params.Page, params.Limit, total),
	})
}

// CreateWorkflowItem creates a workflow item at the pending stage
// @Summary Create workflow item
// @Description Create a workflow item. Items always start at the pending stage.
// @Tags workflow
// @Accept json
// @Produce json
// @Param item body handlers.CreateWorkflowItemRequest true "Item data"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Item created"
// @Failure 400 {object} map[string]string "Invalid request data"
// @Failure 500 {object} map[string]string "Server error"
// @Router /workflow/items [post]
func CreateWorkflowItem(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CreateWorkflowItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	var fileID, organizationID *uuid.UUID
	if req.FileID != "" {
		parsed, err := uuid.Parse(req.FileID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file_id"})
			return
		}
		fileID = &parsed
	}
	if req.OrganizationID != "" {
		parsed, err := uuid.Parse(req.OrganizationID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization_id"})
			return
		}
		organizationID = &parsed
	}

	svc := services.NewWorkflowService()
	item, err := svc.CreateItem(req.Name, req.Instructions, fileID, organizationID, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create workflow item",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Workflow item created successfully",
		"data":    item,
	})
}

// AdvanceWorkflowItem moves an item to its next stage
// @Summary Advance workflow item
// @Description Move an item forward in the stage machine. Transitions are forward-only; the stage update and log entry commit together.
// @Tags workflow
// @Accept json
// @Produce json
// @Param id path string true "Item ID" format(uuid)
// @Param transition body handlers.AdvanceWorkflowItemRequest true "Target stage"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Item advanced"
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /workflow/items/{id}/advance [post]
func AdvanceWorkflowItem(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var req AdvanceWorkflowItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	svc := services.NewWorkflowService()
	item, err := svc.Advance(itemID, workflow.Stage(req.Stage), userID, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Workflow item not found"})
		case errors.Is(err, services.ErrInvalidTransition):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transition", "message": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance workflow item", "message": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Workflow item advanced successfully",
		"data":    item,
	})
}

// GetWorkflowTransitions returns the transition history of an item
// @Summary Get transition log
// @Description Return the append-only transition history of an item, oldest first
// @Tags workflow
// @Accept json
// @Produce json
// @Param id path string true "Item ID" format(uuid)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Transition log"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /workflow/items/{id}/transitions [get]
func GetWorkflowTransitions(ctx *gin.Context) {
	if _, ok := middleware.CurrentUserID(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	svc := services.NewWorkflowService()
	transitions, err := svc.Transitions(itemID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Workflow item not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transitions"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    transitions,
	})
}

// GetMatchZoneFiles lists completed items
// @Summary List match-zone items
// @Description List items that reached the matched stage, with the stage each arrived from
// @Tags workflow
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Matched items"
// @Failure 500 {object} map[string]string "Server error"
// @Router /match-zone/files [get]
func GetMatchZoneFiles(ctx *gin.Context) {
	if _, ok := middleware.CurrentUserID(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	params := query.ParseQueryParams(ctx)
	offset := (params.Page - 1) * params.Limit

	cacheKey := cache.GenerateMatchZoneKey(params.Page, params.Limit)
	if cm := cache.GetCacheManager(); cm != nil {
		if cached, hit := cm.GetMatchZoneCache(cacheKey); hit {
			ctx.JSON(http.StatusOK, gin.H{
				"success":    true,
				"data":       cached.Entries,
				"pagination": query.BuildPaginationResponse(params.Page, params.Limit, cached.Total),
			})
			return
		}
	}

	svc := services.NewWorkflowService()
	items, total, err := svc.ListByStage(workflow.StageMatched, params.Limit, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch match-zone items"})
		return
	}

	type matchZoneEntry struct {
		workflow.Item
		ArrivedFrom workflow.Stage `json:"arrived_from"`
	}

	entries := make([]matchZoneEntry, 0, len(items))
	for _, item := range items {
		entry := matchZoneEntry{Item: item}
		if last, err := svc.LastTransition(item.ID); err == nil && last != nil {
			entry.ArrivedFrom = last.FromStage
		}
		entries = append(entries, entry)
	}

	if cm := cache.GetCacheManager(); cm != nil {
		if payload, err := json.Marshal(entries); err == nil {
			cm.SetMatchZoneCache(cacheKey, &cache.MatchZoneCacheData{Entries: payload, Total: total})
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       entries,
		"pagination": query.BuildPaginationResponse(params.Page, params.Limit, total),
	})
}
