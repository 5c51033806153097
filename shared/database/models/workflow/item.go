package workflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stage is the single authoritative status of a workflow item. An item moves
// forward through stages only; there is no reverse or repeated transition.
type Stage string

const (
	StagePending    Stage = "pending"
	StageUploaded   Stage = "uploaded"
	StageAuthorized Stage = "authorized"
	StagePrinting   Stage = "printing"
	StageInstalling Stage = "installing"
	StageMatched    Stage = "matched"
)

// stageOrder assigns every stage a monotonic rank. Transitions must strictly
// increase the rank.
var stageOrder = map[Stage]int{
	StagePending:    0,
	StageUploaded:   1,
	StageAuthorized: 2,
	StagePrinting:   3,
	StageInstalling: 4,
	StageMatched:    5,
}

// allowedTransitions is the full edge set of the state machine.
// authorized→installing is the only rank-skipping edge: install-only assets
// bypass the print queue.
var allowedTransitions = map[Stage][]Stage{
	StagePending:    {StageUploaded},
	StageUploaded:   {StageAuthorized},
	StageAuthorized: {StagePrinting, StageInstalling},
	StagePrinting:   {StageInstalling},
	StageInstalling: {StageMatched},
	StageMatched:    {},
}

// IsValidStage reports whether s is a known stage
func IsValidStage(s Stage) bool {
	_, ok := stageOrder[s]
	return ok
}

// StageRank returns the monotonic rank of a stage, -1 for unknown stages
func StageRank(s Stage) int {
	if rank, ok := stageOrder[s]; ok {
		return rank
	}
	return -1
}

// CanTransition reports whether the edge from→to exists in the state machine
func CanTransition(from, to Stage) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStages returns the stages reachable from the given stage in one step
func NextStages(from Stage) []Stage {
	return allowedTransitions[from]
}

// ValidateTransition checks an edge and returns a descriptive error when the
// transition is not allowed
func ValidateTransition(from, to Stage) error {
	if !IsValidStage(to) {
		return fmt.Errorf("unknown stage: %s", to)
	}
	if from == to {
		return fmt.Errorf("item is already in stage %s", from)
	}
	if StageRank(to) < StageRank(from) {
		return fmt.Errorf("cannot move backwards from %s to %s", from, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("transition %s → %s is not allowed", from, to)
	}
	return nil
}

// IsTerminal reports whether no further transition is possible from s
func IsTerminal(s Stage) bool {
	return len(allowedTransitions[s]) == 0
}

// Item is one workflow record carrying its authoritative stage. Queues per
// dashboard module are stage queries over this table; moving an item between
// modules changes its stage instead of copying the record.
type Item struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `json:"name" gorm:"size:255;not null"`
	Stage        Stage      `json:"stage" gorm:"size:20;not null;default:'pending';index"`
	Instructions string     `json:"instructions" gorm:"type:text"`
	FileID       *uuid.UUID `json:"file_id" gorm:"type:uuid;index"`

	OrganizationID *uuid.UUID `json:"organization_id" gorm:"type:uuid;index"`
	CreatedBy      uuid.UUID  `json:"created_by" gorm:"type:uuid;not null;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Item
func (Item) TableName() string {
	return "workflow_items"
}

// Transition is one append-only log entry recording a stage change
type Transition struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemID    uuid.UUID `json:"item_id" gorm:"type:uuid;not null;index"`
	FromStage Stage     `json:"from_stage" gorm:"size:20;not null"`
	ToStage   Stage     `json:"to_stage" gorm:"size:20;not null"`
	ActorID   uuid.UUID `json:"actor_id" gorm:"type:uuid;not null"`
	Note      string    `json:"note,omitempty" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for Transition
func (Transition) TableName() string {
	return "workflow_transitions"
}
