package clients

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(serverURL string) *NotificationClient {
	return &NotificationClient{
		baseURL:    serverURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSendWelcomeEmail(t *testing.T) {
	var received map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notifications/email/welcome", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := testClient(server.URL)
	err := client.SendWelcomeEmail("user@example.com", "Ada")
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", received["email"])
	assert.Equal(t, "Ada", received["first_name"])
}

func TestSendOrganizationInvitationEmail(t *testing.T) {
	var received map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notifications/email/organization-invitation", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := testClient(server.URL)
	err := client.SendOrganizationInvitationEmail("invitee@example.com", "org-id", "Acme", "Ada Lovelace", "token-123")
	require.NoError(t, err)

	assert.Equal(t, "invitee@example.com", received["email"])
	assert.Equal(t, "org-id", received["organization_id"])
	assert.Equal(t, "Acme", received["organization_name"])
	assert.Equal(t, "Ada Lovelace", received["inviter_name"])
	assert.Equal(t, "token-123", received["invitation_token"])
}

func TestSendFileUploadEmailPayloadKeys(t *testing.T) {
	var received map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notifications/email/file-upload", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := testClient(server.URL)
	err := client.SendFileUploadEmail("user@example.com", "logo.png", "1.0 KB")
	require.NoError(t, err)

	assert.Equal(t, "logo.png", received["file_name"])
	assert.Equal(t, "1.0 KB", received["file_size"])
}

func TestSendEmailRequestSurfacesServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(EmailResponse{Success: false, Message: "smtp unreachable"})
	}))
	defer server.Close()

	client := testClient(server.URL)
	err := client.SendFileUploadEmail("user@example.com", "logo.png", "1.0 KB")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp unreachable")
	assert.Contains(t, err.Error(), "500")
}

func TestSendEmailRequestConnectionError(t *testing.T) {
	client := testClient("http://127.0.0.1:1")

	err := client.SendWelcomeEmail("user@example.com", "Ada")
	assert.Error(t, err)
}
