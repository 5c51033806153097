package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"assetdesk-backend/shared/config"
)

// NotificationClient handles communication with notification service
type NotificationClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewNotificationClient creates a new notification client
func NewNotificationClient() *NotificationClient {
	cfg := config.GetConfig()
	return &NotificationClient{
		baseURL: cfg.NotificationServiceURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Email request structs

type WelcomeEmailRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
}

type FileUploadEmailRequest struct {
	Email    string `json:"email"`
	FileName string `json:"file_name"`
	FileSize string `json:"file_size,omitempty"`
}

type OrganizationInvitationEmailRequest struct {
	Email            string `json:"email"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	InviterName      string `json:"inviter_name"`
	InvitationToken  string `json:"invitation_token"`
}

// EmailResponse represents email service response
type EmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SentAt  string `json:"sent_at"`
}

// SendWelcomeEmail sends the onboarding email to a new user
func (nc *NotificationClient) SendWelcomeEmail(to, firstName string) error {
	request := WelcomeEmailRequest{
		Email:     to,
		FirstName: firstName,
	}
	return nc.sendEmailRequest("/api/notifications/email/welcome", request)
}

// SendFileUploadEmail confirms a completed upload to its owner
func (nc *NotificationClient) SendFileUploadEmail(to, fileName, fileSize string) error {
	request := FileUploadEmailRequest{
		Email:    to,
		FileName: fileName,
		FileSize: fileSize,
	}
	return nc.sendEmailRequest("/api/notifications/email/file-upload", request)
}

// SendOrganizationInvitationEmail delivers an invitation with its accept token
func (nc *NotificationClient) SendOrganizationInvitationEmail(to, organizationID, organizationName, inviterName, token string) error {
	request := OrganizationInvitationEmailRequest{
		Email:            to,
		OrganizationID:   organizationID,
		OrganizationName: organizationName,
		InviterName:      inviterName,
		InvitationToken:  token,
	}
	return nc.sendEmailRequest("/api/notifications/email/organization-invitation", request)
}

// sendEmailRequest posts an email payload to the notification service
func (nc *NotificationClient) sendEmailRequest(endpoint string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	url := nc.baseURL + endpoint
	resp, err := nc.httpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var emailResp EmailResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&emailResp); decodeErr == nil && emailResp.Message != "" {
			return fmt.Errorf("email service error (%d): %s", resp.StatusCode, emailResp.Message)
		}
		return fmt.Errorf("email service returned status %d", resp.StatusCode)
	}

	return nil
}
