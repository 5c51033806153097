package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvitationIsExpired(t *testing.T) {
	fresh := Invitation{ExpiresAt: time.Now().Add(24 * time.Hour)}
	assert.False(t, fresh.IsExpired())

	stale := Invitation{ExpiresAt: time.Now().Add(-time.Minute)}
	assert.True(t, stale.IsExpired())
}

func TestInvitationStatusValues(t *testing.T) {
	assert.Equal(t, "pending", InvitationStatusPending)
	assert.Equal(t, "accepted", InvitationStatusAccepted)
	assert.Equal(t, "expired", InvitationStatusExpired)
}
