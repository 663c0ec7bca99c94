package repository

import (
	"context"
	"errors"

	"pc-build-tracker-backend/internal/database/models"
	"pc-build-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RepositoryTestSuite exercises the repositories against a real database.
// It runs on SQLite by default and on Postgres with the integration build tag.
type RepositoryTestSuite struct {
	suite.Suite
	usePostgres   bool
	baseTestSuite *testutils.BaseTestSuite
	db            *gorm.DB
	store         *Store
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *RepositoryTestSuite) SetupSuite() {
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
	if suite.usePostgres {
		suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	}
}

// TearDownSuite runs after all tests in the suite
func (suite *RepositoryTestSuite) TearDownSuite() {
	if suite.baseTestSuite != nil {
		suite.baseTestSuite.TeardownTestSuite()
	}
}

// SetupTest gives every test an empty schema
func (suite *RepositoryTestSuite) SetupTest() {
	if suite.baseTestSuite != nil {
		suite.baseTestSuite.SetupTest()
		suite.db = suite.baseTestSuite.DB
	} else {
		suite.db = testutils.NewSQLiteDB(suite.T())
	}
	suite.store = NewStore(suite.db)
}

func (suite *RepositoryTestSuite) createComponent(c *models.Component) *models.Component {
	suite.Require().NoError(suite.store.Components().Create(suite.ctx, c))
	return c
}

func (suite *RepositoryTestSuite) createBuild(userID string) *models.Build {
	build := suite.factories.Build.Create(userID)
	suite.Require().NoError(suite.store.Builds().Create(suite.ctx, build))
	return build
}

func componentIDsOf(rows []models.BuildComponent) []uuid.UUID {
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ComponentID
	}
	return ids
}

func (suite *RepositoryTestSuite) TestComponentCreateAndGet() {
	cpu := suite.createComponent(suite.factories.Component.CPU())
	suite.NotEqual(uuid.Nil, cpu.ID)
	suite.Equal(7, int(cpu.ID.Version()))

	found, err := suite.store.Components().GetByID(suite.ctx, cpu.ID)
	suite.Require().NoError(err)
	suite.Equal(cpu.Name, found.Name)
	suite.Equal("AM5", found.Specs["socket"])
	suite.Nil(found.OwnerID)

	_, err = suite.store.Components().GetByID(suite.ctx, uuid.New())
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *RepositoryTestSuite) TestComponentListVisible() {
	catalogCPU := suite.createComponent(suite.factories.Component.CPU())
	catalogGPU := suite.createComponent(suite.factories.Component.GPU())
	mine := suite.createComponent(suite.factories.Component.OwnedBy(models.CategoryGPU, "alice"))
	suite.createComponent(suite.factories.Component.OwnedBy(models.CategoryGPU, "bob"))

	all, err := suite.store.Components().ListVisible(suite.ctx, "alice", nil)
	suite.Require().NoError(err)
	suite.ElementsMatch([]uuid.UUID{catalogCPU.ID, catalogGPU.ID, mine.ID}, idsOf(all))

	gpu := models.CategoryGPU
	gpus, err := suite.store.Components().ListVisible(suite.ctx, "alice", &gpu)
	suite.Require().NoError(err)
	suite.ElementsMatch([]uuid.UUID{catalogGPU.ID, mine.ID}, idsOf(gpus))
}

func (suite *RepositoryTestSuite) TestComponentGetVisibleByIDs() {
	cpu := suite.createComponent(suite.factories.Component.CPU())
	private := suite.createComponent(suite.factories.Component.OwnedBy(models.CategoryGPU, "bob"))

	found, err := suite.store.Components().GetVisibleByIDs(suite.ctx, "alice", []uuid.UUID{cpu.ID, cpu.ID, private.ID, uuid.New()})
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{cpu.ID}, idsOf(found))

	found, err = suite.store.Components().GetVisibleByIDs(suite.ctx, "alice", nil)
	suite.Require().NoError(err)
	suite.Empty(found)
}

func (suite *RepositoryTestSuite) TestComponentUpdateAndDelete() {
	c := suite.createComponent(suite.factories.Component.OwnedBy(models.CategoryCPU, "alice"))

	err := suite.store.Components().Update(suite.ctx, c.ID, map[string]interface{}{
		"name":  "Renamed",
		"specs": models.Specs{"cores": "16"},
	})
	suite.Require().NoError(err)

	found, err := suite.store.Components().GetByID(suite.ctx, c.ID)
	suite.Require().NoError(err)
	suite.Equal("Renamed", found.Name)
	suite.Equal(models.Specs{"cores": "16"}, found.Specs)
	suite.Equal(c.Brand, found.Brand)

	suite.Require().NoError(suite.store.Components().Delete(suite.ctx, c.ID))
	_, err = suite.store.Components().GetByID(suite.ctx, c.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *RepositoryTestSuite) TestBuildGetByUserIDNewestFirst() {
	first := suite.createBuild("alice")
	second := suite.createBuild("alice")
	suite.createBuild("bob")

	builds, err := suite.store.Builds().GetByUserID(suite.ctx, "alice")
	suite.Require().NoError(err)
	suite.Require().Len(builds, 2)
	suite.Equal(second.ID, builds[0].ID)
	suite.Equal(first.ID, builds[1].ID)

	none, err := suite.store.Builds().GetByUserID(suite.ctx, "carol")
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

func (suite *RepositoryTestSuite) TestBuildUpdateAndDelete() {
	build := suite.factories.Build.Sold("alice", 1500)
	build.PriceBreakdown = models.PriceBreakdown{"gpu": 600, "case": 80}
	suite.Require().NoError(suite.store.Builds().Create(suite.ctx, build))

	found, err := suite.store.Builds().GetByID(suite.ctx, build.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found.SalePrice)
	suite.Equal(1500.0, *found.SalePrice)
	suite.Equal(680.0, found.PriceBreakdown.Total())

	err = suite.store.Builds().Update(suite.ctx, build.ID, map[string]interface{}{
		"sale_price": nil,
		"profit":     nil,
		"status":     models.BuildStatusCompleted,
	})
	suite.Require().NoError(err)

	found, err = suite.store.Builds().GetByID(suite.ctx, build.ID)
	suite.Require().NoError(err)
	suite.Nil(found.SalePrice)
	suite.Nil(found.Profit)
	suite.Equal(models.BuildStatusCompleted, found.Status)
	suite.Equal(build.Name, found.Name)

	suite.Require().NoError(suite.store.Builds().Delete(suite.ctx, build.ID))
	_, err = suite.store.Builds().GetByID(suite.ctx, build.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *RepositoryTestSuite) TestBuildComponentsKeepOrderAndDuplicates() {
	cpu := suite.createComponent(suite.factories.Component.CPU())
	gpu := suite.createComponent(suite.factories.Component.GPU())
	build := suite.createBuild("alice")
	repo := suite.store.BuildComponents()

	rows, err := repo.CreateBatch(suite.ctx, build.ID, []uuid.UUID{gpu.ID, cpu.ID, gpu.ID})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.NotEqual(rows[0].ID, rows[2].ID)

	appended, err := repo.Append(suite.ctx, build.ID, cpu.ID)
	suite.Require().NoError(err)
	suite.Equal(3, appended.Position)

	listed, err := repo.ListByBuildID(suite.ctx, build.ID)
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{gpu.ID, cpu.ID, gpu.ID, cpu.ID}, componentIDsOf(listed))
	for i, row := range listed {
		suite.Equal(i, row.Position)
		suite.Require().NotNil(row.Component)
		suite.Equal(row.ComponentID, row.Component.ID)
	}

	count, err := repo.CountByComponentID(suite.ctx, gpu.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *RepositoryTestSuite) TestBuildComponentsAppendToEmptyBuild() {
	gpu := suite.createComponent(suite.factories.Component.GPU())
	build := suite.createBuild("alice")

	row, err := suite.store.BuildComponents().Append(suite.ctx, build.ID, gpu.ID)
	suite.Require().NoError(err)
	suite.Equal(0, row.Position)
}

func (suite *RepositoryTestSuite) TestBuildComponentsFindFirstAndDeleteOne() {
	gpu := suite.createComponent(suite.factories.Component.GPU())
	build := suite.createBuild("alice")
	repo := suite.store.BuildComponents()

	rows, err := repo.CreateBatch(suite.ctx, build.ID, []uuid.UUID{gpu.ID, gpu.ID})
	suite.Require().NoError(err)

	first, err := repo.FindFirst(suite.ctx, build.ID, gpu.ID)
	suite.Require().NoError(err)
	suite.Equal(rows[0].ID, first.ID)

	affected, err := repo.DeleteByID(suite.ctx, first.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), affected)

	affected, err = repo.DeleteByID(suite.ctx, first.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), affected)

	remaining, err := repo.ListByBuildID(suite.ctx, build.ID)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal(rows[1].ID, remaining[0].ID)

	_, err = repo.FindFirst(suite.ctx, build.ID, uuid.New())
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *RepositoryTestSuite) TestBuildComponentsUpdateComponentIsConditional() {
	oldGPU := suite.createComponent(suite.factories.Component.GPU())
	newGPU := suite.createComponent(suite.factories.Component.GPU())
	build := suite.createBuild("alice")
	repo := suite.store.BuildComponents()

	rows, err := repo.CreateBatch(suite.ctx, build.ID, []uuid.UUID{oldGPU.ID})
	suite.Require().NoError(err)

	affected, err := repo.UpdateComponent(suite.ctx, rows[0].ID, oldGPU.ID, newGPU.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), affected)

	// A second writer still expecting the old component changes nothing
	affected, err = repo.UpdateComponent(suite.ctx, rows[0].ID, oldGPU.ID, newGPU.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), affected)

	listed, err := repo.ListByBuildID(suite.ctx, build.ID)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal(rows[0].ID, listed[0].ID)
	suite.Equal(newGPU.ID, listed[0].ComponentID)
	suite.Equal(0, listed[0].Position)
}

func (suite *RepositoryTestSuite) TestBuildComponentsForSeveralBuilds() {
	cpu := suite.createComponent(suite.factories.Component.CPU())
	gpu := suite.createComponent(suite.factories.Component.GPU())
	a := suite.createBuild("alice")
	b := suite.createBuild("alice")
	repo := suite.store.BuildComponents()

	_, err := repo.CreateBatch(suite.ctx, a.ID, []uuid.UUID{cpu.ID, gpu.ID})
	suite.Require().NoError(err)
	_, err = repo.CreateBatch(suite.ctx, b.ID, []uuid.UUID{gpu.ID})
	suite.Require().NoError(err)

	rows, err := repo.ListByBuildIDs(suite.ctx, []uuid.UUID{a.ID, b.ID})
	suite.Require().NoError(err)
	suite.Len(rows, 3)

	suite.Require().NoError(repo.DeleteByBuildID(suite.ctx, a.ID))
	rows, err = repo.ListByBuildIDs(suite.ctx, []uuid.UUID{a.ID, b.ID})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(b.ID, rows[0].BuildID)

	empty, err := repo.ListByBuildIDs(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *RepositoryTestSuite) TestStoreTransactionRollsBack() {
	gpu := suite.createComponent(suite.factories.Component.GPU())
	boom := errors.New("boom")

	var buildID uuid.UUID
	err := suite.store.Transaction(suite.ctx, func(tx StoreInterface) error {
		build := suite.factories.Build.Create("alice")
		if err := tx.Builds().Create(suite.ctx, build); err != nil {
			return err
		}
		buildID = build.ID
		if _, err := tx.BuildComponents().CreateBatch(suite.ctx, build.ID, []uuid.UUID{gpu.ID}); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	_, err = suite.store.Builds().GetByID(suite.ctx, buildID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
	count, err := suite.store.BuildComponents().CountByComponentID(suite.ctx, gpu.ID)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *RepositoryTestSuite) TestStoreTransactionCommits() {
	err := suite.store.Transaction(suite.ctx, func(tx StoreInterface) error {
		return tx.Builds().Create(suite.ctx, suite.factories.Build.Create("alice"))
	})
	suite.Require().NoError(err)

	builds, err := suite.store.Builds().GetByUserID(suite.ctx, "alice")
	suite.Require().NoError(err)
	suite.Len(builds, 1)
}

func idsOf(components []models.Component) []uuid.UUID {
	ids := make([]uuid.UUID, len(components))
	for i, c := range components {
		ids[i] = c.ID
	}
	return ids
}
