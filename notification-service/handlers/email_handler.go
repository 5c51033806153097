package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"assetdesk-backend/notification-service/services"
	"assetdesk-backend/shared/config"
)

// EmailHandler handles email-related HTTP requests
type EmailHandler struct {
	emailService *services.EmailService
	config       *config.Config
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(emailService *services.EmailService, cfg *config.Config) *EmailHandler {
	return &EmailHandler{
		emailService: emailService,
		config:       cfg,
	}
}

// WelcomeEmailRequest represents the request for the onboarding email
type WelcomeEmailRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
}

// FileUploadEmailRequest represents the request for the upload confirmation email
type FileUploadEmailRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FileName string `json:"file_name" binding:"required"`
	FileSize string `json:"file_size"`
}

// OrganizationInvitationEmailRequest represents the request for the invitation email
type OrganizationInvitationEmailRequest struct {
	Email            string `json:"email" binding:"required,email"`
	OrganizationID   string `json:"organization_id" binding:"required"`
	OrganizationName string `json:"organization_name" binding:"required"`
	InviterName      string `json:"inviter_name"`
	InvitationToken  string `json:"invitation_token" binding:"required"`
}

// SendEmail godoc
// @Summary Send email
// @Description Send a raw or template-based email
// @Tags email
// @Accept json
// @Produce json
// @Param email body services.EmailRequest true "Email request"
// @Success 200 {object} services.EmailResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/notifications/email/send [post]
func (eh *EmailHandler) SendEmail(c *gin.Context) {
	var request services.EmailRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	response, err := eh.emailService.SendEmail(request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send email",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SendWelcomeEmail godoc
// @Summary Send welcome email
// @Description Send the onboarding email to a new user
// @Tags email
// @Accept json
// @Produce json
// @Param email body WelcomeEmailRequest true "Welcome email request"
// @Success 200 {object} services.EmailResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/notifications/email/welcome [post]
func (eh *EmailHandler) SendWelcomeEmail(c *gin.Context) {
	var request WelcomeEmailRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	response, err := eh.emailService.SendWelcomeEmail(request.Email, request.FirstName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send welcome email",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SendFileUploadEmail godoc
// @Summary Send upload confirmation email
// @Description Confirm a completed file upload to its owner
// @Tags email
// @Accept json
// @Produce json
// @Param email body FileUploadEmailRequest true "Upload confirmation request"
// @Success 200 {object} services.EmailResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/notifications/email/file-upload [post]
func (eh *EmailHandler) SendFileUploadEmail(c *gin.Context) {
	var request FileUploadEmailRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	response, err := eh.emailService.SendFileUploadEmail(request.Email, request.FileName, request.FileSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send file upload email",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SendOrganizationInvitationEmail godoc
// @Summary Send organization invitation email
// @Description Deliver an organization invitation with its acceptance link
// @Tags email
// @Accept json
// @Produce json
// @Param email body OrganizationInvitationEmailRequest true "Invitation email request"
// @Success 200 {object} services.EmailResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/notifications/email/organization-invitation [post]
func (eh *EmailHandler) SendOrganizationInvitationEmail(c *gin.Context) {
	var request OrganizationInvitationEmailRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	acceptURL := fmt.Sprintf("%s/auth/accept-invitation?token=%s&org=%s",
		eh.config.AppURL, request.InvitationToken, request.OrganizationID)

	response, err := eh.emailService.SendOrganizationInvitationEmail(
		request.Email, request.OrganizationName, request.InviterName, acceptURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send invitation email",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
