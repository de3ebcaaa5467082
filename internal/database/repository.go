package database

import (
	"github.com/moddeck/moddeck/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	sanction *models.SanctionModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		sanction: models.NewSanction(db, logger),
	}
}

// Sanction returns the sanction model repository.
func (r *Repository) Sanction() *models.SanctionModel {
	return r.sanction
}
