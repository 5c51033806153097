package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportConfig stores which dashboard sections a saved report includes.
// Sections are kept as a comma-separated list, mirroring the dashboard picker.
type ReportConfig struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"size:200;not null"`
	Sections  string    `json:"sections" gorm:"type:text"`
	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
