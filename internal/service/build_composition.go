package service

import (
	"context"
	"fmt"
	"strings"

	"pc-build-tracker-backend/internal/database/models"
	apperrors "pc-build-tracker-backend/internal/errors"
	"pc-build-tracker-backend/internal/logger"
	"pc-build-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

const duplicateNameSuffix = " (Copy)"

// CreateBuildWithComponents creates a build and one association per component id in
// a single transaction. Either everything is stored or nothing is.
func (s *BuildService) CreateBuildWithComponents(ctx context.Context, userID string, req *CreateBuildRequest, componentIDs []uuid.UUID) (*BuildView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperrors.NewValidationError("", "request body is required")
	}
	if len(componentIDs) == 0 {
		return nil, apperrors.ErrNoComponents
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.ErrEmptyBuildName
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := validateBreakdown(req.PriceBreakdown); err != nil {
		return nil, err
	}

	build := newBuild(userID, req)

	var view *BuildView
	err := s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		var err error
		view, err = s.createInTx(ctx, tx, build, componentIDs)
		return err
	})
	if err != nil {
		return nil, storageError("create build", err)
	}

	logger.WithContext(ctx).
		WithFields(map[string]interface{}{"build_id": view.ID, "components": len(componentIDs)}).
		Info("build created")
	return view, nil
}

// ReplaceComponent swaps one occurrence of oldID for newID, keeping the association's
// identity and position
func (s *BuildService) ReplaceComponent(ctx context.Context, buildID uuid.UUID, userID string, oldID, newID uuid.UUID) (*BuildView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var view *BuildView
	err := s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		build, err := s.ownedBuild(ctx, tx, buildID, userID)
		if err != nil {
			return err
		}

		association, err := tx.BuildComponents().FindFirst(ctx, build.ID, oldID)
		if err != nil {
			return lookupError("find build component", err, apperrors.NewNotFoundError(apperrors.ErrBuildComponentNotFound.Entity, oldID.String()))
		}

		current, err := tx.Components().GetByID(ctx, oldID)
		if err != nil {
			return lookupError("get component", err, apperrors.NewNotFoundError("component", oldID.String()))
		}
		replacement, err := s.visibleComponents(ctx, tx, userID, []uuid.UUID{newID})
		if err != nil {
			return err
		}
		if replacement[newID].Category != current.Category {
			return apperrors.NewValidationError("new_component_id",
				fmt.Sprintf("replacement must be a %s, got %s", current.Category, replacement[newID].Category))
		}

		if oldID != newID {
			affected, err := tx.BuildComponents().UpdateComponent(ctx, association.ID, oldID, newID)
			if err != nil {
				return storageError("replace build component", err)
			}
			if affected == 0 {
				return apperrors.ErrAssociationChanged
			}
		}

		view, err = s.loadView(ctx, tx, build)
		return err
	})
	if err != nil {
		return nil, storageError("replace build component", err)
	}

	logger.WithContext(ctx).
		WithFields(map[string]interface{}{"build_id": buildID, "old_component_id": oldID, "new_component_id": newID}).
		Info("build component replaced")
	return view, nil
}

// AddComponent appends one occurrence of componentID to the build
func (s *BuildService) AddComponent(ctx context.Context, buildID uuid.UUID, userID string, componentID uuid.UUID) (*BuildView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var view *BuildView
	err := s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		build, err := s.ownedBuild(ctx, tx, buildID, userID)
		if err != nil {
			return err
		}

		components, err := s.visibleComponents(ctx, tx, userID, []uuid.UUID{componentID})
		if err != nil {
			return err
		}
		component := components[componentID]

		if component.Category.IsSingleton() {
			rows, err := tx.BuildComponents().ListByBuildID(ctx, build.ID)
			if err != nil {
				return storageError("list build components", err)
			}
			for _, row := range rows {
				if row.Component != nil && row.Component.Category == component.Category {
					return apperrors.ErrSingletonCategoryTaken
				}
			}
		}

		if _, err := tx.BuildComponents().Append(ctx, build.ID, componentID); err != nil {
			return storageError("add build component", err)
		}

		view, err = s.loadView(ctx, tx, build)
		return err
	})
	if err != nil {
		return nil, storageError("add build component", err)
	}

	logger.WithContext(ctx).
		WithFields(map[string]interface{}{"build_id": buildID, "component_id": componentID}).
		Info("build component added")
	return view, nil
}

// RemoveComponent deletes exactly one occurrence of componentID from the build, the one
// with the lowest position
func (s *BuildService) RemoveComponent(ctx context.Context, buildID uuid.UUID, userID string, componentID uuid.UUID) (*BuildView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var view *BuildView
	err := s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		build, err := s.ownedBuild(ctx, tx, buildID, userID)
		if err != nil {
			return err
		}

		association, err := tx.BuildComponents().FindFirst(ctx, build.ID, componentID)
		if err != nil {
			return lookupError("find build component", err, apperrors.NewNotFoundError(apperrors.ErrBuildComponentNotFound.Entity, componentID.String()))
		}

		affected, err := tx.BuildComponents().DeleteByID(ctx, association.ID)
		if err != nil {
			return storageError("remove build component", err)
		}
		if affected == 0 {
			return apperrors.ErrAssociationChanged
		}

		view, err = s.loadView(ctx, tx, build)
		return err
	})
	if err != nil {
		return nil, storageError("remove build component", err)
	}

	logger.WithContext(ctx).
		WithFields(map[string]interface{}{"build_id": buildID, "component_id": componentID}).
		Info("build component removed")
	return view, nil
}

// DuplicateBuild copies a build and its composition under a new id. The image is not copied.
func (s *BuildService) DuplicateBuild(ctx context.Context, sourceID uuid.UUID, userID string) (*BuildView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var view *BuildView
	err := s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		source, err := s.ownedBuild(ctx, tx, sourceID, userID)
		if err != nil {
			return err
		}

		rows, err := tx.BuildComponents().ListByBuildID(ctx, source.ID)
		if err != nil {
			return storageError("list build components", err)
		}
		componentIDs := make([]uuid.UUID, len(rows))
		for i, row := range rows {
			componentIDs[i] = row.ComponentID
		}

		copied := &models.Build{
			UserID:         userID,
			Name:           copyName(source.Name),
			Description:    source.Description,
			Status:         source.Status,
			TotalCost:      source.TotalCost,
			SalePrice:      source.SalePrice,
			SoldDate:       source.SoldDate,
			Profit:         source.Profit,
			PriceBreakdown: source.PriceBreakdown,
		}
		view, err = s.createInTx(ctx, tx, copied, componentIDs)
		return err
	})
	if err != nil {
		return nil, storageError("duplicate build", err)
	}

	logger.WithContext(ctx).
		WithFields(map[string]interface{}{"source_build_id": sourceID, "build_id": view.ID}).
		Info("build duplicated")
	return view, nil
}

// createInTx checks visibility and cardinality of componentIDs, then inserts the build
// followed by its associations in input order
func (s *BuildService) createInTx(ctx context.Context, tx repository.StoreInterface, build *models.Build, componentIDs []uuid.UUID) (*BuildView, error) {
	components, err := s.visibleComponents(ctx, tx, build.UserID, componentIDs)
	if err != nil {
		return nil, err
	}
	if err := checkCardinality(componentIDs, components); err != nil {
		return nil, err
	}

	if err := tx.Builds().Create(ctx, build); err != nil {
		return nil, storageError("create build", err)
	}
	if _, err := tx.BuildComponents().CreateBatch(ctx, build.ID, componentIDs); err != nil {
		return nil, storageError("create build components", err)
	}

	return s.loadView(ctx, tx, build)
}

// visibleComponents resolves all distinct ids in one query. The first id in input
// order that is missing or invisible to userID is reported as not found.
func (s *BuildService) visibleComponents(ctx context.Context, store repository.StoreInterface, userID string, ids []uuid.UUID) (map[uuid.UUID]*models.Component, error) {
	distinct := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}

	found, err := store.Components().GetVisibleByIDs(ctx, userID, distinct)
	if err != nil {
		return nil, storageError("get components", err)
	}

	byID := make(map[uuid.UUID]*models.Component, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, apperrors.NewNotFoundError("component", id.String())
		}
	}
	return byID, nil
}

// checkCardinality allows at most one CPU and one motherboard per build
func checkCardinality(ids []uuid.UUID, components map[uuid.UUID]*models.Component) error {
	counts := make(map[models.ComponentCategory]int)
	for _, id := range ids {
		category := components[id].Category
		counts[category]++
		if category.IsSingleton() && counts[category] > 1 {
			return apperrors.NewValidationError("component_ids", fmt.Sprintf("a build may contain at most one %s", category))
		}
	}
	return nil
}

func newBuild(userID string, req *CreateBuildRequest) *models.Build {
	status := req.Status
	if status == "" {
		status = models.BuildStatusPlanned
	}

	totalCost := req.TotalCost
	if req.PriceBreakdown != nil {
		totalCost = req.PriceBreakdown.Total()
	}

	profit := req.Profit
	if profit == nil {
		profit = deriveProfit(req.SalePrice, totalCost)
	}

	return &models.Build{
		UserID:         userID,
		Name:           req.Name,
		Description:    req.Description,
		Status:         status,
		TotalCost:      totalCost,
		SalePrice:      req.SalePrice,
		SoldDate:       req.SoldDate,
		Profit:         profit,
		PriceBreakdown: req.PriceBreakdown,
	}
}

// copyName appends the copy suffix, trimming the source name so the result fits the column
func copyName(name string) string {
	limit := maxBuildNameLength - len(duplicateNameSuffix)
	if len(name) > limit {
		runes := []rune(name)
		for len(string(runes)) > limit {
			runes = runes[:len(runes)-1]
		}
		name = string(runes)
	}
	return name + duplicateNameSuffix
}
