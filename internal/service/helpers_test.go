package service_test

import (
	"context"
	"testing"

	"pc-build-tracker-backend/internal/database/models"
	"pc-build-tracker-backend/internal/repository"
	"pc-build-tracker-backend/internal/service"
	"pc-build-tracker-backend/internal/storage"
	"pc-build-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// sqliteEnv wires real services over a private in-memory database
type sqliteEnv struct {
	db         *gorm.DB
	store      *repository.Store
	images     *storage.MemoryImageStore
	builds     *service.BuildService
	components *service.ComponentService
	factories  *testutils.FactorySet
}

func newSQLiteEnv(t *testing.T) *sqliteEnv {
	t.Helper()
	db := testutils.NewSQLiteDB(t)
	store := repository.NewStore(db)
	images := storage.NewMemoryImageStore(0)
	v := service.NewValidator()

	return &sqliteEnv{
		db:         db,
		store:      store,
		images:     images,
		builds:     service.NewBuildService(store, images, v),
		components: service.NewComponentService(store, v),
		factories:  testutils.NewFactorySet(),
	}
}

func (e *sqliteEnv) insertComponent(t *testing.T, c *models.Component) *models.Component {
	t.Helper()
	require.NoError(t, e.store.Components().Create(context.Background(), c))
	return c
}

func (e *sqliteEnv) countBuilds(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.Build{}).Count(&count).Error)
	return count
}

func (e *sqliteEnv) countAssociations(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.BuildComponent{}).Count(&count).Error)
	return count
}
