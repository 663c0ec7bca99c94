package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pc-build-tracker-backend/internal/database/models"
	apperrors "pc-build-tracker-backend/internal/errors"
	"pc-build-tracker-backend/internal/logger"
	"pc-build-tracker-backend/internal/repository"
	"pc-build-tracker-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	maxBuildNameLength    = 200
	defaultReleaseTimeout = 30 * time.Second
)

// BuildService provides build storage, composition and projection logic
type BuildService struct {
	store          repository.StoreInterface
	images         storage.ImageStore
	validator      *validator.Validate
	releaseTimeout time.Duration
}

// Ensure BuildService implements BuildServiceInterface
var _ BuildServiceInterface = (*BuildService)(nil)

// NewBuildService creates a new BuildService. images may be nil, in which case image
// operations fail and build deletion skips image release.
func NewBuildService(store repository.StoreInterface, images storage.ImageStore, validator *validator.Validate) *BuildService {
	return &BuildService{
		store:          store,
		images:         images,
		validator:      validator,
		releaseTimeout: defaultReleaseTimeout,
	}
}

// CreateBuildRequest holds the build fields supplied on creation
type CreateBuildRequest struct {
	Name           string                `json:"name" validate:"required,max=200"`
	Description    string                `json:"description" validate:"max=5000"`
	Status         models.BuildStatus    `json:"status" validate:"omitempty,oneof=planned in-progress completed sold"`
	TotalCost      float64               `json:"total_cost" validate:"gte=0"`
	SalePrice      *float64              `json:"sale_price" validate:"omitempty,gte=0"`
	SoldDate       *time.Time            `json:"sold_date"`
	Profit         *float64              `json:"profit"`
	PriceBreakdown models.PriceBreakdown `json:"price_breakdown"`
}

// BuildPatch is a partial build update; absent keys are left untouched
type BuildPatch struct {
	Name           Optional[string]                `json:"name"`
	Description    Optional[string]                `json:"description"`
	Status         Optional[models.BuildStatus]    `json:"status"`
	TotalCost      Optional[float64]               `json:"total_cost"`
	SalePrice      Optional[*float64]              `json:"sale_price"`
	SoldDate       Optional[*time.Time]            `json:"sold_date"`
	Profit         Optional[*float64]              `json:"profit"`
	PriceBreakdown Optional[models.PriceBreakdown] `json:"price_breakdown"`
}

// IsEmpty reports whether no field is present
func (p *BuildPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Description.Set && !p.Status.Set && !p.TotalCost.Set &&
		!p.SalePrice.Set && !p.SoldDate.Set && !p.Profit.Set && !p.PriceBreakdown.Set
}

// PatchBuild applies a partial update to one of the user's builds in a single UPDATE
func (s *BuildService) PatchBuild(ctx context.Context, id uuid.UUID, userID string, patch *BuildPatch) (*BuildView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if patch == nil || patch.IsEmpty() {
		return nil, apperrors.ErrEmptyPatch
	}

	var view *BuildView
	err := s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		build, err := s.ownedBuild(ctx, tx, id, userID)
		if err != nil {
			return err
		}

		updates, err := buildUpdates(build, patch)
		if err != nil {
			return err
		}

		if err := tx.Builds().Update(ctx, build.ID, updates); err != nil {
			return storageError("update build", err)
		}

		updated, err := tx.Builds().GetByID(ctx, build.ID)
		if err != nil {
			return lookupError("reload build", err, apperrors.NewNotFoundError("build", id.String()))
		}
		view, err = s.loadView(ctx, tx, updated)
		return err
	})
	if err != nil {
		return nil, storageError("patch build", err)
	}

	return view, nil
}

// buildUpdates turns the present patch fields into a column map. A price breakdown
// overrides total_cost with its sum. Profit follows sale_price - total_cost whenever
// either of them changes, unless the patch sets profit itself.
func buildUpdates(current *models.Build, patch *BuildPatch) (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if patch.Name.Set {
		name := strings.TrimSpace(patch.Name.Value)
		if name == "" {
			return nil, apperrors.ErrEmptyBuildName
		}
		if len(name) > maxBuildNameLength {
			return nil, apperrors.NewValidationError("name", fmt.Sprintf("must be at most %d", maxBuildNameLength))
		}
		updates["name"] = name
	}
	if patch.Description.Set {
		updates["description"] = patch.Description.Value
	}
	if patch.Status.Set {
		if !patch.Status.Value.IsValid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", patch.Status.Value))
		}
		updates["status"] = patch.Status.Value
	}

	totalCost := current.TotalCost
	totalChanged := false
	if patch.TotalCost.Set {
		if patch.TotalCost.Value < 0 {
			return nil, apperrors.NewValidationError("total_cost", "must not be negative")
		}
		totalCost = patch.TotalCost.Value
		totalChanged = true
	}
	if patch.PriceBreakdown.Set {
		breakdown := patch.PriceBreakdown.Value
		if err := validateBreakdown(breakdown); err != nil {
			return nil, err
		}
		updates["price_breakdown"] = breakdown
		if breakdown != nil {
			totalCost = breakdown.Total()
			totalChanged = true
		}
	}
	if totalChanged {
		updates["total_cost"] = totalCost
	}

	salePrice := current.SalePrice
	if patch.SalePrice.Set {
		if patch.SalePrice.Value != nil && *patch.SalePrice.Value < 0 {
			return nil, apperrors.NewValidationError("sale_price", "must not be negative")
		}
		salePrice = patch.SalePrice.Value
		updates["sale_price"] = salePrice
	}
	if patch.SoldDate.Set {
		updates["sold_date"] = patch.SoldDate.Value
	}

	switch {
	case patch.Profit.Set:
		updates["profit"] = patch.Profit.Value
	case patch.SalePrice.Set || totalChanged:
		updates["profit"] = deriveProfit(salePrice, totalCost)
	}

	return updates, nil
}

func deriveProfit(salePrice *float64, totalCost float64) *float64 {
	if salePrice == nil {
		return nil
	}
	profit := *salePrice - totalCost
	return &profit
}

func validateBreakdown(breakdown models.PriceBreakdown) error {
	for category, amount := range breakdown {
		if strings.TrimSpace(category) == "" {
			return apperrors.NewValidationError("price_breakdown", "categories must not be empty")
		}
		if amount < 0 {
			return apperrors.NewValidationError("price_breakdown", fmt.Sprintf("amount for %q must not be negative", category))
		}
	}
	return nil
}

// DeleteBuild removes a build and its associations, then releases its image in the background
func (s *BuildService) DeleteBuild(ctx context.Context, id uuid.UUID, userID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	var imageRef string
	err := s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		build, err := s.ownedBuild(ctx, tx, id, userID)
		if err != nil {
			return err
		}
		imageRef = build.ImageRef

		if err := tx.BuildComponents().DeleteByBuildID(ctx, build.ID); err != nil {
			return storageError("delete build components", err)
		}
		if err := tx.Builds().Delete(ctx, build.ID); err != nil {
			return storageError("delete build", err)
		}
		return nil
	})
	if err != nil {
		return storageError("delete build", err)
	}

	logger.WithContext(ctx).WithField("build_id", id).Info("build deleted")
	s.releaseImageAsync(ctx, imageRef)
	return nil
}

// SetImage stores a new build image and releases the previous one
func (s *BuildService) SetImage(ctx context.Context, id uuid.UUID, userID string, data []byte, contentType string) (*BuildView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if s.images == nil {
		return nil, apperrors.NewStorageError("store image", fmt.Errorf("image store not configured"))
	}

	if _, err := s.ownedBuild(ctx, s.store, id, userID); err != nil {
		return nil, err
	}

	ref, err := s.images.StoreImage(ctx, data, contentType)
	if err != nil {
		return nil, storageError("store image", err)
	}

	var (
		view     *BuildView
		previous string
	)
	err = s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		build, err := s.ownedBuild(ctx, tx, id, userID)
		if err != nil {
			return err
		}
		previous = build.ImageRef

		if err := tx.Builds().Update(ctx, build.ID, map[string]interface{}{"image_ref": ref}); err != nil {
			return storageError("update build image", err)
		}
		build.ImageRef = ref
		view, err = s.loadView(ctx, tx, build)
		return err
	})
	if err != nil {
		s.releaseImageAsync(ctx, ref)
		return nil, storageError("set build image", err)
	}

	s.releaseImageAsync(ctx, previous)
	return view, nil
}

// ClearImage removes the image reference from a build and releases the image
func (s *BuildService) ClearImage(ctx context.Context, id uuid.UUID, userID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	var previous string
	err := s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		build, err := s.ownedBuild(ctx, tx, id, userID)
		if err != nil {
			return err
		}
		previous = build.ImageRef
		if previous == "" {
			return nil
		}
		if err := tx.Builds().Update(ctx, build.ID, map[string]interface{}{"image_ref": ""}); err != nil {
			return storageError("clear build image", err)
		}
		return nil
	})
	if err != nil {
		return storageError("clear build image", err)
	}

	s.releaseImageAsync(ctx, previous)
	return nil
}

// ownedBuild loads a build and checks that userID owns it
func (s *BuildService) ownedBuild(ctx context.Context, store repository.StoreInterface, id uuid.UUID, userID string) (*models.Build, error) {
	build, err := store.Builds().GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("get build", err, apperrors.NewNotFoundError("build", id.String()))
	}
	if build.UserID != userID {
		return nil, apperrors.ErrBuildNotOwned
	}
	return build, nil
}

// releaseImageAsync releases ref on a detached context; failures are only logged
func (s *BuildService) releaseImageAsync(ctx context.Context, ref string) {
	if ref == "" || s.images == nil {
		return
	}

	log := logger.WithContext(ctx).WithField("image_ref", ref)
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.releaseTimeout)
	go func() {
		defer cancel()
		if err := s.images.ReleaseImage(releaseCtx, ref); err != nil {
			log.WithError(err).Warn("failed to release build image")
			return
		}
		log.Debug("build image released")
	}()
}
