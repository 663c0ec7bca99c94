package service

import (
	"context"

	"pc-build-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ComponentServiceInterface defines the interface for the component catalog
type ComponentServiceInterface interface {
	ListVisible(ctx context.Context, userID string, category *models.ComponentCategory) ([]ComponentResponse, error)
	GetVisible(ctx context.Context, id uuid.UUID, userID string) (*ComponentResponse, error)
	Create(ctx context.Context, userID string, req *CreateComponentRequest) (*ComponentResponse, error)
	Update(ctx context.Context, id uuid.UUID, userID string, req *UpdateComponentRequest) (*ComponentResponse, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}

// BuildServiceInterface defines the interface for build storage, composition and projection
type BuildServiceInterface interface {
	CreateBuildWithComponents(ctx context.Context, userID string, req *CreateBuildRequest, componentIDs []uuid.UUID) (*BuildView, error)
	PatchBuild(ctx context.Context, id uuid.UUID, userID string, patch *BuildPatch) (*BuildView, error)
	DeleteBuild(ctx context.Context, id uuid.UUID, userID string) error
	SetImage(ctx context.Context, id uuid.UUID, userID string, data []byte, contentType string) (*BuildView, error)
	ClearImage(ctx context.Context, id uuid.UUID, userID string) error

	ReplaceComponent(ctx context.Context, buildID uuid.UUID, userID string, oldID, newID uuid.UUID) (*BuildView, error)
	AddComponent(ctx context.Context, buildID uuid.UUID, userID string, componentID uuid.UUID) (*BuildView, error)
	RemoveComponent(ctx context.Context, buildID uuid.UUID, userID string, componentID uuid.UUID) (*BuildView, error)
	DuplicateBuild(ctx context.Context, sourceID uuid.UUID, userID string) (*BuildView, error)

	GetBuild(ctx context.Context, id uuid.UUID, userID string) (*BuildView, error)
	GetPublicBuildView(ctx context.Context, id uuid.UUID) (*PublicBuildView, error)
	ListBuildsForUser(ctx context.Context, userID string) ([]BuildView, error)
}
