package repository

import (
	"context"

	"pc-build-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ComponentRepositoryInterface defines the interface for component repository operations
type ComponentRepositoryInterface interface {
	Create(ctx context.Context, component *models.Component) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Component, error)
	ListVisible(ctx context.Context, userID string, category *models.ComponentCategory) ([]models.Component, error)
	GetVisibleByIDs(ctx context.Context, userID string, ids []uuid.UUID) ([]models.Component, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BuildRepositoryInterface defines the interface for build repository operations
type BuildRepositoryInterface interface {
	Create(ctx context.Context, build *models.Build) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Build, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Build, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BuildComponentRepositoryInterface defines the interface for build-component association operations
type BuildComponentRepositoryInterface interface {
	CreateBatch(ctx context.Context, buildID uuid.UUID, componentIDs []uuid.UUID) ([]models.BuildComponent, error)
	Append(ctx context.Context, buildID, componentID uuid.UUID) (*models.BuildComponent, error)
	ListByBuildID(ctx context.Context, buildID uuid.UUID) ([]models.BuildComponent, error)
	ListByBuildIDs(ctx context.Context, buildIDs []uuid.UUID) ([]models.BuildComponent, error)
	FindFirst(ctx context.Context, buildID, componentID uuid.UUID) (*models.BuildComponent, error)
	UpdateComponent(ctx context.Context, id, oldComponentID, newComponentID uuid.UUID) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByBuildID(ctx context.Context, buildID uuid.UUID) error
	CountByComponentID(ctx context.Context, componentID uuid.UUID) (int64, error)
}

// StoreInterface gives access to all repositories bound to one database handle and
// runs functions inside a single transaction
type StoreInterface interface {
	Components() ComponentRepositoryInterface
	Builds() BuildRepositoryInterface
	BuildComponents() BuildComponentRepositoryInterface
	Transaction(ctx context.Context, fn func(tx StoreInterface) error) error
}
