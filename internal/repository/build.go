package repository

import (
	"context"

	"pc-build-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuildRepository handles database operations for builds
type BuildRepository struct {
	db *gorm.DB
}

// NewBuildRepository creates a new build repository
func NewBuildRepository(db *gorm.DB) *BuildRepository {
	return &BuildRepository{db: db}
}

// Create creates a new build
func (r *BuildRepository) Create(ctx context.Context, build *models.Build) error {
	return r.db.WithContext(ctx).Create(build).Error
}

// GetByID retrieves a build by ID
func (r *BuildRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Build, error) {
	var build models.Build
	err := r.db.WithContext(ctx).First(&build, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &build, nil
}

// GetByUserID retrieves all builds of a user, newest first.
// Build ids are UUIDv7 so descending id order is descending creation order.
func (r *BuildRepository) GetByUserID(ctx context.Context, userID string) ([]models.Build, error) {
	builds := []models.Build{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&builds).Error
	if err != nil {
		return nil, err
	}
	return builds, nil
}

// Update applies the given column updates to a build in one UPDATE statement
func (r *BuildRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Build{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a build row. Associations are removed separately by the caller
// inside the same transaction.
func (r *BuildRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Build{}, "id = ?", id).Error
}
