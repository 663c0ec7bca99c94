package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that share one database handle. A Store created
// inside Transaction is bound to that transaction.
type Store struct {
	db              *gorm.DB
	components      *ComponentRepository
	builds          *BuildRepository
	buildComponents *BuildComponentRepository
}

// NewStore creates a store over db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:              db,
		components:      NewComponentRepository(db),
		builds:          NewBuildRepository(db),
		buildComponents: NewBuildComponentRepository(db),
	}
}

// Components returns the component repository
func (s *Store) Components() ComponentRepositoryInterface {
	return s.components
}

// Builds returns the build repository
func (s *Store) Builds() BuildRepositoryInterface {
	return s.builds
}

// BuildComponents returns the build-component association repository
func (s *Store) BuildComponents() BuildComponentRepositoryInterface {
	return s.buildComponents
}

// Transaction runs fn in one database transaction bound to ctx. Returning an error
// from fn, a panic, or cancellation of ctx rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(tx StoreInterface) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
