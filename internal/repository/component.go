package repository

import (
	"context"

	"pc-build-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentRepository handles database operations for components
type ComponentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// Create creates a new component
func (r *ComponentRepository) Create(ctx context.Context, component *models.Component) error {
	return r.db.WithContext(ctx).Create(component).Error
}

// GetByID retrieves a component by ID regardless of owner
func (r *ComponentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.WithContext(ctx).First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// ListVisible returns catalog entries plus the user's private components,
// optionally filtered by category
func (r *ComponentRepository) ListVisible(ctx context.Context, userID string, category *models.ComponentCategory) ([]models.Component, error) {
	var components []models.Component

	query := r.db.WithContext(ctx).Model(&models.Component{}).
		Where("owner_id IS NULL OR owner_id = ?", userID)
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	err := query.Order("category ASC, brand ASC, model ASC, name ASC").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// GetVisibleByIDs returns the subset of ids that exist and are visible to userID.
// Duplicate ids are collapsed by the IN clause.
func (r *ComponentRepository) GetVisibleByIDs(ctx context.Context, userID string, ids []uuid.UUID) ([]models.Component, error) {
	var components []models.Component
	if len(ids) == 0 {
		return components, nil
	}

	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("owner_id IS NULL OR owner_id = ?", userID).
		Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// Update applies the given column updates to a component
func (r *ComponentRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Component{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a component
func (r *ComponentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Component{}, "id = ?", id).Error
}
