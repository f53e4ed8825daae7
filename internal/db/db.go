// Package db opens the database connection and keeps the schema migrated.
package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"crudboard/internal/models"
)

// Init connects to postgres and migrates the board's tables.
func Init(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Println("Database connection established")

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
	); err != nil {
		return nil, err
	}
	log.Println("Database migration completed")

	return gdb, nil
}
