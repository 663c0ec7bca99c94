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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ComponentService provides the component catalog: global entries plus each user's private parts
type ComponentService struct {
	store     repository.StoreInterface
	validator *validator.Validate
}

// Ensure ComponentService implements ComponentServiceInterface
var _ ComponentServiceInterface = (*ComponentService)(nil)

// NewComponentService creates a new ComponentService
func NewComponentService(store repository.StoreInterface, validator *validator.Validate) *ComponentService {
	return &ComponentService{
		store:     store,
		validator: validator,
	}
}

// CreateComponentRequest represents a request to register a private component
type CreateComponentRequest struct {
	Name     string                   `json:"name" validate:"required,max=200"`
	Category models.ComponentCategory `json:"category" validate:"required,oneof=cpu gpu motherboard"`
	Brand    string                   `json:"brand" validate:"required,max=100"`
	Model    string                   `json:"model" validate:"required,max=200"`
	Specs    map[string]string        `json:"specs,omitempty"`
}

// UpdateComponentRequest is a partial update; absent keys are left untouched.
// Category is not editable.
type UpdateComponentRequest struct {
	Name  Optional[string]            `json:"name"`
	Brand Optional[string]            `json:"brand"`
	Model Optional[string]            `json:"model"`
	Specs Optional[map[string]string] `json:"specs"`
}

// ComponentResponse represents a component in API responses
type ComponentResponse struct {
	ID        uuid.UUID                `json:"id"`
	Name      string                   `json:"name"`
	Category  models.ComponentCategory `json:"category"`
	Brand     string                   `json:"brand"`
	Model     string                   `json:"model"`
	Specs     map[string]string        `json:"specs"`
	OwnerID   *string                  `json:"owner_id,omitempty"`
	IsCatalog bool                     `json:"is_catalog"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// ListVisible returns catalog entries and the user's own components, optionally filtered by category
func (s *ComponentService) ListVisible(ctx context.Context, userID string, category *models.ComponentCategory) ([]ComponentResponse, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if category != nil && !category.IsValid() {
		return nil, apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q", *category))
	}

	components, err := s.store.Components().ListVisible(ctx, userID, category)
	if err != nil {
		return nil, storageError("list components", err)
	}

	responses := make([]ComponentResponse, len(components))
	for i := range components {
		responses[i] = toComponentResponse(&components[i])
	}
	return responses, nil
}

// GetVisible returns a component the user can see
func (s *ComponentService) GetVisible(ctx context.Context, id uuid.UUID, userID string) (*ComponentResponse, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	component, err := s.getVisible(ctx, s.store, id, userID)
	if err != nil {
		return nil, err
	}

	response := toComponentResponse(component)
	return &response, nil
}

// Create registers a component owned by the user
func (s *ComponentService) Create(ctx context.Context, userID string, req *CreateComponentRequest) (*ComponentResponse, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Brand = strings.TrimSpace(req.Brand)
	req.Model = strings.TrimSpace(req.Model)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	owner := userID
	component := &models.Component{
		Name:     req.Name,
		Category: req.Category,
		Brand:    req.Brand,
		Model:    req.Model,
		Specs:    models.Specs(req.Specs),
		OwnerID:  &owner,
	}
	if component.Specs == nil {
		component.Specs = models.Specs{}
	}

	if err := s.store.Components().Create(ctx, component); err != nil {
		return nil, storageError("create component", err)
	}

	logger.WithContext(ctx).
		WithFields(map[string]interface{}{"component_id": component.ID, "category": component.Category}).
		Info("component created")

	response := toComponentResponse(component)
	return &response, nil
}

// Update applies a partial update to one of the user's own components
func (s *ComponentService) Update(ctx context.Context, id uuid.UUID, userID string, req *UpdateComponentRequest) (*ComponentResponse, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	updates, err := componentUpdates(req)
	if err != nil {
		return nil, err
	}

	component, err := s.getEditable(ctx, s.store, id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.store.Components().Update(ctx, component.ID, updates); err != nil {
		return nil, storageError("update component", err)
	}

	updated, err := s.store.Components().GetByID(ctx, component.ID)
	if err != nil {
		return nil, lookupError("reload component", err, apperrors.NewNotFoundError("component", id.String()))
	}

	response := toComponentResponse(updated)
	return &response, nil
}

// Delete removes one of the user's own components. Components still used by a build are kept.
func (s *ComponentService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	err := s.store.Transaction(ctx, func(tx repository.StoreInterface) error {
		component, err := s.getEditable(ctx, tx, id, userID)
		if err != nil {
			return err
		}

		count, err := tx.BuildComponents().CountByComponentID(ctx, component.ID)
		if err != nil {
			return storageError("count component references", err)
		}
		if count > 0 {
			return apperrors.ErrComponentInUse
		}

		if err := tx.Components().Delete(ctx, component.ID); err != nil {
			return storageError("delete component", err)
		}
		return nil
	})
	if err != nil {
		return storageError("delete component", err)
	}

	logger.WithContext(ctx).WithField("component_id", id).Info("component deleted")
	return nil
}

// getVisible loads a component and hides it unless it is a catalog entry or owned by userID
func (s *ComponentService) getVisible(ctx context.Context, store repository.StoreInterface, id uuid.UUID, userID string) (*models.Component, error) {
	notFound := apperrors.NewNotFoundError("component", id.String())

	component, err := store.Components().GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("get component", err, notFound)
	}
	if !component.VisibleTo(userID) {
		return nil, notFound
	}
	return component, nil
}

// getEditable is getVisible plus the rule that catalog entries are read-only
func (s *ComponentService) getEditable(ctx context.Context, store repository.StoreInterface, id uuid.UUID, userID string) (*models.Component, error) {
	component, err := s.getVisible(ctx, store, id, userID)
	if err != nil {
		return nil, err
	}
	if component.IsCatalogEntry() {
		return nil, apperrors.ErrCatalogComponentLocked
	}
	return component, nil
}

func componentUpdates(req *UpdateComponentRequest) (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	text := []struct {
		column string
		field  Optional[string]
		max    int
	}{
		{"name", req.Name, 200},
		{"brand", req.Brand, 100},
		{"model", req.Model, 200},
	}
	for _, t := range text {
		if !t.field.Set {
			continue
		}
		value := strings.TrimSpace(t.field.Value)
		if value == "" {
			return nil, apperrors.NewValidationError(t.column, "must not be empty")
		}
		if len(value) > t.max {
			return nil, apperrors.NewValidationError(t.column, fmt.Sprintf("must be at most %d", t.max))
		}
		updates[t.column] = value
	}

	if req.Specs.Set {
		specs := models.Specs(req.Specs.Value)
		if specs == nil {
			specs = models.Specs{}
		}
		updates["specs"] = specs
	}

	if len(updates) == 0 {
		return nil, apperrors.ErrEmptyPatch
	}
	return updates, nil
}

// toComponentResponse converts a Component model to API response
func toComponentResponse(c *models.Component) ComponentResponse {
	specs := map[string]string(c.Specs)
	if specs == nil {
		specs = map[string]string{}
	}
	return ComponentResponse{
		ID:        c.ID,
		Name:      c.Name,
		Category:  c.Category,
		Brand:     c.Brand,
		Model:     c.Model,
		Specs:     specs,
		OwnerID:   c.OwnerID,
		IsCatalog: c.IsCatalogEntry(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
