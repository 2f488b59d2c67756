package database

import (
	"log"
	"sciencepress/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Image{},
		&models.Favorite{},
		&models.Comment{},
		&models.Rating{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
