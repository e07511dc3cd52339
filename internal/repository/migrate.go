// internal/repository/migrate.go
package repository

import (
	"gorm.io/gorm"

	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

// Migrate applies the schema. Reviews are the only persisted table; session
// state is deliberately in-memory only.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Review{})
}
