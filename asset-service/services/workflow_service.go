package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"assetdesk-backend/shared/database"
	"assetdesk-backend/shared/database/models/workflow"
	"assetdesk-backend/shared/utils/cache"
)

var (
	ErrItemNotFound      = errors.New("workflow item not found")
	ErrInvalidTransition = errors.New("invalid stage transition")
)

// WorkflowService moves items through the stage machine. All stage changes go
// through Advance so the transition log never diverges from item stages.
type WorkflowService struct {
	db *gorm.DB
}

func NewWorkflowService() *WorkflowService {
	return &WorkflowService{db: database.GetDB()}
}

// CreateItem creates a new item at the pending stage
func (s *WorkflowService) CreateItem(name, instructions string, fileID, organizationID *uuid.UUID, createdBy uuid.UUID) (*workflow.Item, error) {
	item := workflow.Item{
		Name:           name,
		Stage:          workflow.StagePending,
		Instructions:   instructions,
		FileID:         fileID,
		OrganizationID: organizationID,
		CreatedBy:      createdBy,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create workflow item: %w", err)
	}

	return &item, nil
}

// Advance moves an item to the target stage. The stage update and the
// transition log entry commit in one transaction.
func (s *WorkflowService) Advance(itemID uuid.UUID, to workflow.Stage, actorID uuid.UUID, note string) (*workflow.Item, error) {
	var item workflow.Item

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if err := workflow.ValidateTransition(item.Stage, to); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		from := item.Stage
		item.Stage = to
		if err := tx.Model(&workflow.Item{}).Where("id = ?", item.ID).Update("stage", to).Error; err != nil {
			return err
		}

		transition := workflow.Transition{
			ItemID:    item.ID,
			FromStage: from,
			ToStage:   to,
			ActorID:   actorID,
			Note:      note,
		}
		return tx.Create(&transition).Error
	})

	if err != nil {
		return nil, err
	}

	// Arriving at matched changes the match-zone listing
	if item.Stage == workflow.StageMatched {
		if cm := cache.GetCacheManager(); cm != nil {
			if err := cm.InvalidateMatchZone(); err != nil {
				log.Printf("❌ Failed to invalidate match-zone cache: %v", err)
			}
		}
	}

	return &item, nil
}

// ListByStage returns the queue for one stage, newest first
func (s *WorkflowService) ListByStage(stage workflow.Stage, limit, offset int) ([]workflow.Item, int64, error) {
	var items []workflow.Item
	var total int64

	query := s.db.Model(&workflow.Item{}).Where("stage = ?", stage)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("updated_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

// Transitions returns the append-only history of an item, oldest first
func (s *WorkflowService) Transitions(itemID uuid.UUID) ([]workflow.Transition, error) {
	var exists int64
	if err := s.db.Model(&workflow.Item{}).Where("id = ?", itemID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrItemNotFound
	}

	var transitions []workflow.Transition
	err := s.db.Where("item_id = ?", itemID).Order("created_at ASC").Find(&transitions).Error
	return transitions, err
}

// LastTransition returns the most recent transition of an item, nil when the
// item has never moved
func (s *WorkflowService) LastTransition(itemID uuid.UUID) (*workflow.Transition, error) {
	var transition workflow.Transition
	err := s.db.Where("item_id = ?", itemID).Order("created_at DESC").First(&transition).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transition, nil
}
