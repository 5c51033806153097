package file

import (
	"time"

	"github.com/google/uuid"

	"assetdesk-backend/shared/database/models"
)

// FileRecord is the persisted metadata row for an uploaded asset. The payload
// bytes live in blob storage under ObjectKey; URL is the public address.
type FileRecord struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	URL       string    `json:"url" gorm:"not null"`
	ObjectKey string    `json:"object_key" gorm:"not null;unique"`
	Size      int64     `json:"size" gorm:"not null"`
	MimeType  string    `json:"type" gorm:"not null"`
	Category  string    `json:"category" gorm:"size:100;default:'general'"`

	OrganizationID *uuid.UUID `json:"organization_id" gorm:"type:uuid;index"`
	PersonaID      *uuid.UUID `json:"persona_id" gorm:"type:uuid;index"`
	UploadedBy     uuid.UUID  `json:"uploaded_by" gorm:"type:uuid;not null;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Organization *models.Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Persona      *models.Persona      `json:"persona,omitempty" gorm:"foreignKey:PersonaID"`
}

// Evidence is a standalone uploaded proof document. Unlike FileRecord it has
// no category or organization context, only an uploader and a timestamp.
type Evidence struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `json:"name" gorm:"not null"`
	URL        string    `json:"url" gorm:"not null"`
	ObjectKey  string    `json:"object_key" gorm:"not null;unique"`
	Size       int64     `json:"size" gorm:"not null"`
	UploadedBy uuid.UUID `json:"uploaded_by" gorm:"type:uuid;not null;index"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}
