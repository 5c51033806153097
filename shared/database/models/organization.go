package models

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Industry    string    `json:"industry" gorm:"size:100"`
	Website     string    `json:"website" gorm:"size:255"`
	Size        string    `json:"size" gorm:"size:50"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InvitationStatus values for organization invitations
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusExpired  = "expired"
)

// Invitation is a persisted organization invite. Only a hash of the token is
// stored; the raw token leaves the system exclusively inside the email link.
type Invitation struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	Email          string    `json:"email" gorm:"size:255;not null"`
	Role           string    `json:"role" gorm:"size:50;default:'member'"`
	TokenHash      string    `json:"-" gorm:"size:64;uniqueIndex;not null"`
	Status         string    `json:"status" gorm:"size:20;default:'pending'"`
	ExpiresAt      time.Time `json:"expires_at" gorm:"not null"`
	InvitedBy      uuid.UUID `json:"invited_by" gorm:"type:uuid;not null"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// IsExpired reports whether the invitation expiry has passed
func (i *Invitation) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
