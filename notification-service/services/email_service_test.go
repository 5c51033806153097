package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetdesk-backend/shared/config"
)

func testEmailService() *EmailService {
	cfg := &config.Config{
		EmailFrom:     "noreply@assetdesk.io",
		EmailFromName: "AssetDesk",
		AppURL:        "http://localhost:3000",
	}
	return NewEmailService(cfg)
}

func TestBuildEmailMessageHeaders(t *testing.T) {
	es := testEmailService()

	message := es.buildEmailMessage(EmailRequest{
		To:      []string{"user@example.com"},
		Subject: "Hello",
		Body:    "plain body",
	})

	assert.Contains(t, message, "From: AssetDesk <noreply@assetdesk.io>\r\n")
	assert.Contains(t, message, "To: user@example.com\r\n")
	assert.Contains(t, message, "Subject: Hello\r\n")
	assert.Contains(t, message, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.Contains(t, message, "\r\n\r\nplain body")
}

func TestBuildEmailMessageHTMLAndCC(t *testing.T) {
	es := testEmailService()

	message := es.buildEmailMessage(EmailRequest{
		To:      []string{"a@example.com", "b@example.com"},
		CC:      []string{"c@example.com"},
		Subject: "Hi",
		Body:    "<p>html</p>",
		IsHTML:  true,
	})

	assert.Contains(t, message, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, message, "CC: c@example.com\r\n")
	assert.Contains(t, message, "Content-Type: text/html; charset=UTF-8\r\n")
}

func TestSendEmailRejectsEmptyRecipients(t *testing.T) {
	es := testEmailService()

	_, err := es.SendEmail(EmailRequest{Subject: "Hi", Body: "body"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipient list cannot be empty")
}

func TestSendEmailRejectsEmptySubject(t *testing.T) {
	es := testEmailService()

	_, err := es.SendEmail(EmailRequest{To: []string{"user@example.com"}, Body: "body"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subject cannot be empty")
}

func TestSendEmailRejectsEmptyBody(t *testing.T) {
	es := testEmailService()

	_, err := es.SendEmail(EmailRequest{To: []string{"user@example.com"}, Subject: "Hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body cannot be empty")
}

func TestSendEmailDoesNotMutateRecipients(t *testing.T) {
	cfg := &config.Config{
		EmailFrom:     "noreply@assetdesk.io",
		EmailFromName: "AssetDesk",
		SMTPHost:      "127.0.0.1",
		SMTPPort:      "1",
		SMTPUsername:  "user",
		SMTPPassword:  "pass",
	}
	es := NewEmailService(cfg)

	backing := make([]string, 2, 4)
	backing[0] = "a@example.com"
	backing[1] = "sentinel"
	to := backing[:1]

	_, err := es.SendEmail(EmailRequest{
		To:      to,
		CC:      []string{"c@example.com"},
		Subject: "Hi",
		Body:    "body",
	})
	require.Error(t, err)

	// Building the recipient list must not write through To's backing array
	assert.Equal(t, "sentinel", backing[1])
}

func TestSendEmailFailsWithoutSMTPConfig(t *testing.T) {
	es := testEmailService()

	resp, err := es.SendEmail(EmailRequest{
		To:      []string{"user@example.com"},
		Subject: "Hi",
		Body:    "body",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP configuration is incomplete")
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
}
