// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/seedinglabs/seeding-backend/internal/config"
	"github.com/seedinglabs/seeding-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.Collection{},
		&models.AdminConfig{},
		&models.AuditLog{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Collection indexes
		"CREATE INDEX IF NOT EXISTS idx_collections_name ON collections(name)",
		"CREATE INDEX IF NOT EXISTS idx_collections_created_at ON collections(created_at ASC)",
		// Access code lookups scan the JSONB documents
		"CREATE INDEX IF NOT EXISTS idx_collections_access_codes ON collections USING GIN(access_codes)",

		// Audit log indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_actor_action ON audit_logs(actor, action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource_type, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	// Create the admin credential record on first run
	var configCount int64
	db.Model(&models.AdminConfig{}).Count(&configCount)

	if configCount == 0 {
		adminConfig := &models.AdminConfig{
			Password:       models.DefaultAdminPassword,
			RecoveryPhrase: models.DefaultRecoveryPhrase,
		}

		if err := db.Create(adminConfig).Error; err != nil {
			return fmt.Errorf("failed to create admin config: %w", err)
		}

		log.Println("Default admin config created successfully")
	}

	// Create a sample collection so the dashboard is not empty on first run
	var collectionCount int64
	db.Model(&models.Collection{}).Count(&collectionCount)

	if collectionCount == 0 {
		sample := &models.Collection{
			Name:             "25FW Collection",
			LogoURL:          "https://picsum.photos/seed/brand/400/100",
			DescriptionTitle: "25FW: THE NEW ERA",
			DescriptionBody:  "Exploring the boundaries of minimal architecture through wearable art. Our Fall/Winter 2025 collection focuses on structured silhouettes and sustainable materials.",
			AccessCodes: models.AccessCodeList{
				{Code: "VIP25", Limit: 3},
				{Code: "FRIENDS", Limit: 1},
			},
			Lookbook: models.LookbookList{
				{ID: "lb1", URL: "https://picsum.photos/seed/look1/800/1200", Order: 0},
				{ID: "lb2", URL: "https://picsum.photos/seed/look2/800/1200", Order: 1},
				{ID: "lb3", URL: "https://picsum.photos/seed/look3/800/1200", Order: 2},
				{ID: "lb4", URL: "https://picsum.photos/seed/look4/800/1200", Order: 3},
			},
			Products: models.ProductList{
				{
					ID:      "p1",
					Name:    "Structured Wool Coat",
					Price:   450000,
					Options: []string{"1", "2"},
					Summary: "A signature piece with architectural shoulders.",
					Images:  []string{"https://picsum.photos/seed/p1/600/900"},
				},
				{
					ID:      "p2",
					Name:    "Silk Blend Trousers",
					Price:   280000,
					Options: []string{"S", "M", "L"},
					Summary: "Flowy and elegant for every occasion.",
					Images:  []string{"https://picsum.photos/seed/p2/600/900"},
				},
			},
			Orders: models.OrderList{},
		}

		if err := db.Create(sample).Error; err != nil {
			return fmt.Errorf("failed to create sample collection: %w", err)
		}

		log.Println("Sample collection created successfully")
	}

	log.Println("Initial data seeding completed")
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
