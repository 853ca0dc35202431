package postgres

import (
	"github.com/dom/garden-manager/internal/domain"
	"github.com/dom/garden-manager/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.GardenProfile{},
		&domain.JournalEntry{},
		&domain.PlantDiagnosis{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:      NewUserRepository(db),
		Garden:    NewGardenRepository(db),
		Journal:   NewJournalRepository(db),
		Diagnosis: NewDiagnosisRepository(db),
	}
}
