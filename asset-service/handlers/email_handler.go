package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"assetdesk-backend/asset-service/middleware"
	"assetdesk-backend/shared/clients"
	utils "assetdesk-backend/shared/utils/auth"
)

// SendEmailRequest represents request body for the email dispatch endpoint
type SendEmailRequest struct {
	Type string            `json:"type" binding:"required"`
	To   string            `json:"to" binding:"required"`
	Data map[string]string `json:"data"`
}

// SendEmail dispatches a transactional email by type
// @Summary Send a transactional email
// @Description Dispatch a typed email through the notification service
// @Tags emails
// @Accept json
// @Produce json
// @Param email body handlers.SendEmailRequest true "Email type, recipient and template data"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Email queued"
// @Failure 400 {object} map[string]string "Unknown type or invalid recipient"
// @Failure 500 {object} map[string]string "Email service failure"
// @Router /send-email [post]
func SendEmail(ctx *gin.Context) {
	if _, ok := middleware.CurrentUserID(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req SendEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	if err := utils.ValidateEmail(req.To); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := clients.NewNotificationClient()

	var err error
	switch req.Type {
	case "welcome":
		err = client.SendWelcomeEmail(req.To, req.Data["first_name"])
	case "file-upload":
		err = client.SendFileUploadEmail(req.To, req.Data["file_name"], req.Data["file_size"])
	case "organization-invitation":
		err = client.SendOrganizationInvitationEmail(
			req.To,
			req.Data["organization_id"],
			req.Data["organization_name"],
			req.Data["inviter_name"],
			req.Data["invitation_token"],
		)
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown email type: " + req.Type})
		return
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send email",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      uuid.NewString(),
	})
}
