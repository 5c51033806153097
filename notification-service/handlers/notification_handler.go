package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"assetdesk-backend/notification-service/services"
	"assetdesk-backend/shared/database"
	"assetdesk-backend/shared/database/models/notification"
)

// @Summary List notifications
// @Description List notifications, optionally filtered by user
// @Tags notifications
// @Accept json
// @Produce json
// @Param user_id query string false "Filter by user ID"
// @Param unread query bool false "Only unread notifications"
// @Success 200 {array} notification.Notification
// @Failure 500 {object} map[string]interface{}
// @Router /notifications [get]
func GetNotifications(c *gin.Context) {
	db := database.GetDB()

	dbQuery := db.Order("created_at DESC")
	if userID := c.Query("user_id"); userID != "" {
		dbQuery = dbQuery.Where("user_id = ?", userID)
	}
	if c.Query("unread") == "true" {
		dbQuery = dbQuery.Where("is_read = ?", false)
	}

	var notifications []notification.Notification
	if err := dbQuery.Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// @Summary Get notification by ID
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID" format(uuid)
// @Success 200 {object} notification.Notification
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /notifications/{id} [get]
func GetNotification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	var notif notification.Notification
	db := database.GetDB()
	if err := db.First(&notif, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, notif)
}

// @Summary Create notification
// @Description Persist a notification and push it to the recipient over WebSocket when connected
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body notification.Notification true "Notification data"
// @Success 201 {object} notification.Notification
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /notifications [post]
func CreateNotification(c *gin.Context) {
	var notif notification.Notification

	if err := c.ShouldBindJSON(&notif); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	if err := db.Create(&notif).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
		return
	}

	if notif.UserID != nil {
		wsManager := services.GetWebSocketManager()
		wsManager.SendToUser(notif.UserID.String(), &notification.WebSocketMessage{
			Type:      notif.Type,
			Level:     notif.Level,
			Title:     notif.Title,
			Message:   notif.Message,
			Timestamp: notification.GetCurrentTime(),
			EntityID:  notif.EntityID,
			Entity:    notif.Entity,
			UserID:    notif.UserID,
		})
	}

	c.JSON(http.StatusCreated, notif)
}

// @Summary Mark notification as read
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID" format(uuid)
// @Success 200 {object} notification.Notification
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /notifications/{id}/read [put]
func MarkAsRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	var notif notification.Notification
	db := database.GetDB()

	if err := db.First(&notif, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	now := time.Now().UTC()
	notif.IsRead = true
	notif.ReadAt = &now
	if err := db.Save(&notif).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, notif)
}

// @Summary Delete notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID" format(uuid)
// @Success 204
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /notifications/{id} [delete]
func DeleteNotification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	db := database.GetDB()
	if err := db.Delete(&notification.Notification{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		return
	}

	c.Status(http.StatusNoContent)
}
