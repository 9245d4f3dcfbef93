package db

import (
	"gorm.io/gorm"

	"github.com/Somye55/colbin-recruitment-platform/internal/models"
)

// Init opens the database behind the given dialector and migrates the users
// table. The dialector is injected so cmd/server can pass postgres while
// tests pass an in-memory sqlite. TranslateError lets the store match
// duplicate-key failures across drivers.
func Init(dialector gorm.Dialector) (*gorm.DB, error) {
	conn, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := conn.AutoMigrate(&models.User{}); err != nil {
		return nil, err
	}
	return conn, nil
}
