package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mcstudio/internal/config"
	"mcstudio/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	dsn := cfg.Database.Postgres.GetDSN()

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(&db_models.QuestionnaireResponse{}); err != nil {
		log.Printf("Error running migrations: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
