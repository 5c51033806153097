package database

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"assetdesk-backend/shared/config"
	"assetdesk-backend/shared/database/models"
	"assetdesk-backend/shared/database/models/workflow"
)

// SeedDatabase seeds the database with initial data
func SeedDatabase() error {
	log.Println("🌱 Checking database seed data...")

	admin, err := seedSuperAdmin()
	if err != nil {
		return err
	}

	created, err := seedSampleMatchZoneItem(admin.ID)
	if err != nil {
		return err
	}

	if created {
		log.Println("✅ Database seeding completed (sample match-zone item created)")
	} else {
		log.Println("✅ Database seed data is up to date")
	}

	return nil
}

// seedSuperAdmin creates the super admin account from config if it is missing
func seedSuperAdmin() (*models.User, error) {
	cfg := config.GetConfig()

	var existing models.User
	err := DB.Where("email = ?", cfg.SuperAdminEmail).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := models.User{
		Email:         cfg.SuperAdminEmail,
		Password:      string(hashed),
		FirstName:     "Super",
		LastName:      "Admin",
		Status:        "ACTIVE",
		EmailVerified: true,
	}

	if err := DB.Create(&admin).Error; err != nil {
		return nil, err
	}

	log.Printf("✅ Super admin created: %s", admin.Email)
	return &admin, nil
}

// seedSampleMatchZoneItem seeds one completed workflow item so the match-zone
// view is never empty on a fresh install. The item carries a full transition
// history down the install path.
func seedSampleMatchZoneItem(actorID uuid.UUID) (bool, error) {
	var count int64
	if err := DB.Model(&workflow.Item{}).Where("stage = ?", workflow.StageMatched).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	item := workflow.Item{
		Name:      "storefront-banner-design.pdf",
		Stage:     workflow.StageMatched,
		CreatedBy: actorID,
	}

	path := []workflow.Stage{
		workflow.StagePending,
		workflow.StageUploaded,
		workflow.StageAuthorized,
		workflow.StageInstalling,
		workflow.StageMatched,
	}

	return true, DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		for i := 0; i < len(path)-1; i++ {
			transition := workflow.Transition{
				ItemID:    item.ID,
				FromStage: path[i],
				ToStage:   path[i+1],
				ActorID:   actorID,
				Note:      "seed data",
			}
			if err := tx.Create(&transition).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
