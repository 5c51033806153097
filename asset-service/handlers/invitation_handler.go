package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"assetdesk-backend/asset-service/middleware"
	"assetdesk-backend/shared/clients"
	"assetdesk-backend/shared/config"
	"assetdesk-backend/shared/database"
	"assetdesk-backend/shared/database/models"
	utils "assetdesk-backend/shared/utils/auth"
)

// CreateInvitationRequest represents request body for inviting a member
type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required"`
	Role  string `json:"role"`
}

// AcceptInvitationRequest represents request body for redeeming an invitation
type AcceptInvitationRequest struct {
	Token          string `json:"token" binding:"required"`
	OrganizationID string `json:"organization_id" binding:"required"`
}

// CreateInvitation invites a member to an organization
// @Summary Invite a member
// @Description Mint an invitation token and email it to the invitee. Only the organization owner may invite.
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID" format(uuid)
// @Param invitation body handlers.CreateInvitationRequest true "Invitation data"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Invitation sent"
// @Failure 400 {object} map[string]string "Invalid request data"
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Server error or email failure"
// @Router /organizations/{id}/invitations [post]
func CreateInvitation(ctx *gin.Context) {
	db := database.GetDB()
	cfg := config.GetConfig()

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	// Combined lookup: a foreign organization reads the same as a missing one
	var org models.Organization
	if err := db.First(&org, "id = ? AND owner_id = ?", ctx.Param("id"), userID).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return
	}

	var req CreateInvitationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	if err := utils.ValidateEmail(req.Email); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = "member"
	}

	token := uuid.NewString()
	expiryDays := cfg.GetInvitationExpiryDays()

	invitation := models.Invitation{
		OrganizationID: org.ID,
		Email:          req.Email,
		Role:           role,
		TokenHash:      utils.HashToken(token),
		Status:         models.InvitationStatusPending,
		ExpiresAt:      time.Now().Add(time.Duration(expiryDays) * 24 * time.Hour),
		InvitedBy:      userID,
	}

	if err := db.Create(&invitation).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create invitation",
			"message": err.Error(),
		})
		return
	}

	inviterName := middleware.CurrentUserEmail(ctx)
	var inviter models.User
	if err := db.First(&inviter, "id = ?", userID).Error; err == nil {
		inviterName = fmt.Sprintf("%s %s", inviter.FirstName, inviter.LastName)
	}

	client := clients.NewNotificationClient()
	if err := client.SendOrganizationInvitationEmail(req.Email, org.ID.String(), org.Name, inviterName, token); err != nil {
		// No dangling unsendable invite
		if cleanupErr := db.Delete(&invitation).Error; cleanupErr != nil {
			log.Printf("❌ Failed to remove invitation after email failure: %v", cleanupErr)
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send invitation email",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Invitation sent successfully",
		"data":    invitation,
	})
}

// GetInvitations lists an organization's invitations
// @Summary List invitations
// @Description List invitations for an organization. Only the owner may list.
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID" format(uuid)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of invitations"
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /organizations/{id}/invitations [get]
func GetInvitations(ctx *gin.Context) {
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

	var invitations []models.Invitation
	if err := db.Where("organization_id = ?", org.ID).Order("created_at DESC").Find(&invitations).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invitations"})
		return
	}

	// Expiry is enforced at read time too so listings never show a stale
	// pending invite
	for i := range invitations {
		if invitations[i].Status == models.InvitationStatusPending && invitations[i].IsExpired() {
			invitations[i].Status = models.InvitationStatusExpired
			db.Model(&invitations[i]).Update("status", models.InvitationStatusExpired)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    invitations,
	})
}

// AcceptInvitation redeems an invitation token
// @Summary Accept invitation
// @Description Redeem an invitation token. Expiry is enforced server-side at redemption.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body handlers.AcceptInvitationRequest true "Token and organization"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Invitation accepted"
// @Failure 400 {object} map[string]string "Invalid, already used or expired token"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /invitations/accept [post]
func AcceptInvitation(ctx *gin.Context) {
	db := database.GetDB()

	if _, ok := middleware.CurrentUserID(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req AcceptInvitationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	var invitation models.Invitation
	err := db.Where("token_hash = ? AND organization_id = ?", utils.HashToken(req.Token), req.OrganizationID).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invitation"})
		return
	}

	if invitation.Status == models.InvitationStatusAccepted {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invitation has already been accepted"})
		return
	}

	if invitation.Status == models.InvitationStatusExpired || invitation.IsExpired() {
		if invitation.Status != models.InvitationStatusExpired {
			db.Model(&invitation).Update("status", models.InvitationStatusExpired)
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invitation has expired"})
		return
	}

	now := time.Now()
	invitation.Status = models.InvitationStatusAccepted
	invitation.AcceptedAt = &now

	if err := db.Save(&invitation).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to accept invitation",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Invitation accepted successfully",
		"data":    invitation,
	})
}
