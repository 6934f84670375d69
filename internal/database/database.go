package database

import (
	"fmt"

	"github.com/Himon-SYNCRAFT/taskplus-api/internal/config"
	"github.com/Himon-SYNCRAFT/taskplus-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the MySQL database. TranslateError is enabled so duplicate
// key and foreign key violations classify as gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated regardless of driver.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.TaskStatus{},
		&models.TaskType{},
		&models.TaskAttributeType{},
		&models.TaskAttribute{},
		&models.TaskAttributeToTaskType{},
		&models.Task{},
		&models.TaskAttributeValue{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
