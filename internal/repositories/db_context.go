package repositories

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jathow/careertrack/internal/entities"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {

	err := c.DB.AutoMigrate(entities.StoredValue{})
	if err != nil {
		return fmt.Errorf("failed to migrate StoredValue entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.DismissedNotification{})
	if err != nil {
		return fmt.Errorf("failed to migrate DismissedNotification entity: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
