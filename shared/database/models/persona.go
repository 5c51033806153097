package models

import (
	"time"

	"github.com/google/uuid"
)

// Persona is a named external profile an asset can be attributed to.
// Personas are archived instead of deleted so references stay resolvable.
type Persona struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"size:200;not null"`
	Link      string    `json:"link" gorm:"size:500"`
	Archived  bool      `json:"archived" gorm:"default:false;index"`
	OwnerID   uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
