package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetdesk-backend/notification-service/services"
	"assetdesk-backend/shared/database/models/notification"
)

// HandleWebSocket handles WebSocket connection requests
// @Summary WebSocket Connection
// @Description Establish WebSocket connection for real-time notifications
// @Tags websocket
// @Param user_id path string true "User ID"
// @Router /ws/notifications/{user_id} [get]
func HandleWebSocket(c *gin.Context) {
	wsManager := services.GetWebSocketManager()
	wsManager.HandleWebSocketConnection(c)
}

// SendMessageRequest represents the request payload for sending WebSocket messages
type SendMessageRequest struct {
	UserID  string                         `json:"user_id" binding:"required"`
	Message *notification.WebSocketMessage `json:"message" binding:"required"`
}

// SendWebSocketMessage sends a message to one connected user
// @Summary Send WebSocket Message
// @Description Send real-time message to specific user via WebSocket
// @Tags websocket
// @Accept json
// @Produce json
// @Param payload body SendMessageRequest true "Message payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /ws/send [post]
func SendWebSocketMessage(c *gin.Context) {
	var request SendMessageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	wsManager := services.GetWebSocketManager()

	if err := wsManager.SendToUser(request.UserID, request.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "WebSocket message sent successfully",
		"user_id": request.UserID,
	})
}
