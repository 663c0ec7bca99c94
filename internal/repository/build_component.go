package repository

import (
	"context"
	"database/sql"

	"pc-build-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuildComponentRepository handles database operations for build-component associations
type BuildComponentRepository struct {
	db *gorm.DB
}

// NewBuildComponentRepository creates a new build-component repository
func NewBuildComponentRepository(db *gorm.DB) *BuildComponentRepository {
	return &BuildComponentRepository{db: db}
}

// CreateBatch inserts one association per component id, keeping input order as position
func (r *BuildComponentRepository) CreateBatch(ctx context.Context, buildID uuid.UUID, componentIDs []uuid.UUID) ([]models.BuildComponent, error) {
	rows := make([]models.BuildComponent, len(componentIDs))
	for i, componentID := range componentIDs {
		rows[i] = models.BuildComponent{
			BuildID:     buildID,
			ComponentID: componentID,
			Position:    i,
		}
	}
	if len(rows) == 0 {
		return rows, nil
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Append adds one association after the current last position of the build
func (r *BuildComponentRepository) Append(ctx context.Context, buildID, componentID uuid.UUID) (*models.BuildComponent, error) {
	var maxPosition sql.NullInt64
	err := r.db.WithContext(ctx).Model(&models.BuildComponent{}).
		Where("build_id = ?", buildID).
		Select("MAX(position)").
		Scan(&maxPosition).Error
	if err != nil {
		return nil, err
	}

	row := &models.BuildComponent{
		BuildID:     buildID,
		ComponentID: componentID,
	}
	if maxPosition.Valid {
		row.Position = int(maxPosition.Int64) + 1
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// ListByBuildID returns the associations of a build with their components, in position order
func (r *BuildComponentRepository) ListByBuildID(ctx context.Context, buildID uuid.UUID) ([]models.BuildComponent, error) {
	rows := []models.BuildComponent{}
	err := r.db.WithContext(ctx).
		Preload("Component").
		Where("build_id = ?", buildID).
		Order("position ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByBuildIDs returns the associations of several builds in one query
func (r *BuildComponentRepository) ListByBuildIDs(ctx context.Context, buildIDs []uuid.UUID) ([]models.BuildComponent, error) {
	rows := []models.BuildComponent{}
	if len(buildIDs) == 0 {
		return rows, nil
	}

	err := r.db.WithContext(ctx).
		Preload("Component").
		Where("build_id IN ?", buildIDs).
		Order("build_id ASC, position ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindFirst returns the lowest-position association tying buildID to componentID
func (r *BuildComponentRepository) FindFirst(ctx context.Context, buildID, componentID uuid.UUID) (*models.BuildComponent, error) {
	var row models.BuildComponent
	err := r.db.WithContext(ctx).
		Where("build_id = ? AND component_id = ?", buildID, componentID).
		Order("position ASC, id ASC").
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateComponent points one association at a different component, keeping its id and
// position. The update only applies while the row still references oldComponentID;
// the number of affected rows is returned so callers can detect concurrent changes.
func (r *BuildComponentRepository) UpdateComponent(ctx context.Context, id, oldComponentID, newComponentID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.BuildComponent{}).
		Where("id = ? AND component_id = ?", id, oldComponentID).
		Update("component_id", newComponentID)
	return result.RowsAffected, result.Error
}

// DeleteByID deletes exactly one association by its own identity
func (r *BuildComponentRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.BuildComponent{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// DeleteByBuildID deletes every association of a build
func (r *BuildComponentRepository) DeleteByBuildID(ctx context.Context, buildID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.BuildComponent{}, "build_id = ?", buildID).Error
}

// CountByComponentID counts associations referencing a component across all builds
func (r *BuildComponentRepository) CountByComponentID(ctx context.Context, componentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BuildComponent{}).
		Where("component_id = ?", componentID).
		Count(&count).Error
	return count, err
}
