package service

import (
	"context"
	"time"

	"pc-build-tracker-backend/internal/database/models"
	apperrors "pc-build-tracker-backend/internal/errors"
	"pc-build-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// BuildComponentEntry is one association of a build in position order
type BuildComponentEntry struct {
	AssociationID uuid.UUID         `json:"association_id"`
	Position      int               `json:"position"`
	Component     ComponentResponse `json:"component"`
}

// GPUEntry groups identical GPUs of a build
type GPUEntry struct {
	Component      ComponentResponse `json:"component"`
	Count          int               `json:"count"`
	AssociationIDs []uuid.UUID       `json:"association_ids"`
}

// BuildView is the owner's view of a build with its composition
type BuildView struct {
	ID             uuid.UUID             `json:"id"`
	UserID         string                `json:"user_id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Status         models.BuildStatus    `json:"status"`
	TotalCost      float64               `json:"total_cost"`
	SalePrice      *float64              `json:"sale_price"`
	SoldDate       *time.Time            `json:"sold_date"`
	Profit         *float64              `json:"profit"`
	ImageRef       string                `json:"image_ref,omitempty"`
	PriceBreakdown models.PriceBreakdown `json:"price_breakdown,omitempty"`
	CPU            *ComponentResponse    `json:"cpu"`
	Motherboard    *ComponentResponse    `json:"motherboard"`
	GPUs           []GPUEntry            `json:"gpus"`
	Components     []BuildComponentEntry `json:"components"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// PublicBuildView is the shareable view of a build without owner or sale details
type PublicBuildView struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Status      models.BuildStatus    `json:"status"`
	TotalCost   float64               `json:"total_cost"`
	ImageRef    string                `json:"image_ref,omitempty"`
	CPU         *ComponentResponse    `json:"cpu"`
	Motherboard *ComponentResponse    `json:"motherboard"`
	GPUs        []GPUEntry            `json:"gpus"`
	Components  []BuildComponentEntry `json:"components"`
	CreatedAt   time.Time             `json:"created_at"`
}

// GetBuild returns the owner's view of a build
func (s *BuildService) GetBuild(ctx context.Context, id uuid.UUID, userID string) (*BuildView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	build, err := s.ownedBuild(ctx, s.store, id, userID)
	if err != nil {
		return nil, err
	}
	return s.loadView(ctx, s.store, build)
}

// GetPublicBuildView returns the shareable view of any build
func (s *BuildService) GetPublicBuildView(ctx context.Context, id uuid.UUID) (*PublicBuildView, error) {
	build, err := s.store.Builds().GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("get build", err, apperrors.NewNotFoundError("build", id.String()))
	}

	view, err := s.loadView(ctx, s.store, build)
	if err != nil {
		return nil, err
	}
	return view.Public(), nil
}

// ListBuildsForUser returns the user's builds, newest first
func (s *BuildService) ListBuildsForUser(ctx context.Context, userID string) ([]BuildView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	builds, err := s.store.Builds().GetByUserID(ctx, userID)
	if err != nil {
		return nil, storageError("list builds", err)
	}
	views := make([]BuildView, 0, len(builds))
	if len(builds) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, len(builds))
	for i := range builds {
		ids[i] = builds[i].ID
	}
	rows, err := s.store.BuildComponents().ListByBuildIDs(ctx, ids)
	if err != nil {
		return nil, storageError("list build components", err)
	}

	byBuild := make(map[uuid.UUID][]models.BuildComponent, len(builds))
	for _, row := range rows {
		byBuild[row.BuildID] = append(byBuild[row.BuildID], row)
	}

	for i := range builds {
		views = append(views, *ProjectBuild(&builds[i], byBuild[builds[i].ID]))
	}
	return views, nil
}

func (s *BuildService) loadView(ctx context.Context, store repository.StoreInterface, build *models.Build) (*BuildView, error) {
	rows, err := store.BuildComponents().ListByBuildID(ctx, build.ID)
	if err != nil {
		return nil, storageError("list build components", err)
	}
	return ProjectBuild(build, rows), nil
}

// ProjectBuild groups position-ordered associations into the CPU and motherboard
// slots and count-grouped GPUs. The first CPU or motherboard by position wins.
func ProjectBuild(build *models.Build, rows []models.BuildComponent) *BuildView {
	view := &BuildView{
		ID:             build.ID,
		UserID:         build.UserID,
		Name:           build.Name,
		Description:    build.Description,
		Status:         build.Status,
		TotalCost:      build.TotalCost,
		SalePrice:      build.SalePrice,
		SoldDate:       build.SoldDate,
		Profit:         build.Profit,
		ImageRef:       build.ImageRef,
		PriceBreakdown: build.PriceBreakdown,
		GPUs:           []GPUEntry{},
		Components:     make([]BuildComponentEntry, 0, len(rows)),
		CreatedAt:      build.CreatedAt,
		UpdatedAt:      build.UpdatedAt,
	}

	gpuIndex := make(map[uuid.UUID]int)
	for _, row := range rows {
		if row.Component == nil {
			continue
		}
		component := toComponentResponse(row.Component)
		view.Components = append(view.Components, BuildComponentEntry{
			AssociationID: row.ID,
			Position:      row.Position,
			Component:     component,
		})

		switch row.Component.Category {
		case models.CategoryCPU:
			if view.CPU == nil {
				c := component
				view.CPU = &c
			}
		case models.CategoryMotherboard:
			if view.Motherboard == nil {
				c := component
				view.Motherboard = &c
			}
		case models.CategoryGPU:
			if i, ok := gpuIndex[row.ComponentID]; ok {
				view.GPUs[i].Count++
				view.GPUs[i].AssociationIDs = append(view.GPUs[i].AssociationIDs, row.ID)
				continue
			}
			gpuIndex[row.ComponentID] = len(view.GPUs)
			view.GPUs = append(view.GPUs, GPUEntry{
				Component:      component,
				Count:          1,
				AssociationIDs: []uuid.UUID{row.ID},
			})
		}
	}

	return view
}

// ComponentIDs returns the component ids of the build in position order, duplicates included
func (v *BuildView) ComponentIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(v.Components))
	for i, entry := range v.Components {
		ids[i] = entry.Component.ID
	}
	return ids
}

// Public strips owner and sale details from the view, including the owner id
// carried by private components
func (v *BuildView) Public() *PublicBuildView {
	public := &PublicBuildView{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Status:      v.Status,
		TotalCost:   v.TotalCost,
		ImageRef:    v.ImageRef,
		CPU:         anonymize(v.CPU),
		Motherboard: anonymize(v.Motherboard),
		GPUs:        make([]GPUEntry, len(v.GPUs)),
		Components:  make([]BuildComponentEntry, len(v.Components)),
		CreatedAt:   v.CreatedAt,
	}
	for i, gpu := range v.GPUs {
		gpu.Component = *anonymize(&gpu.Component)
		public.GPUs[i] = gpu
	}
	for i, entry := range v.Components {
		entry.Component = *anonymize(&entry.Component)
		public.Components[i] = entry
	}
	return public
}

func anonymize(c *ComponentResponse) *ComponentResponse {
	if c == nil {
		return nil
	}
	copied := *c
	copied.OwnerID = nil
	return &copied
}
