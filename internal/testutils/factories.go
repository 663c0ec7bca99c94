package testutils

import (
	"fmt"

	"pc-build-tracker-backend/internal/database/models"
)

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct {
	seq int
}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a global catalog component of the given category
func (f *ComponentFactory) Create(category models.ComponentCategory) *models.Component {
	f.seq++
	return &models.Component{
		Name:     fmt.Sprintf("Test %s %d", category, f.seq),
		Category: category,
		Brand:    "TestBrand",
		Model:    fmt.Sprintf("%s-%d", category, f.seq),
		Specs:    models.Specs{"tier": "test"},
	}
}

// CPU creates a catalog CPU
func (f *ComponentFactory) CPU() *models.Component {
	c := f.Create(models.CategoryCPU)
	c.Brand = "AMD"
	c.Specs = models.Specs{"cores": "8", "socket": "AM5"}
	return c
}

// GPU creates a catalog GPU
func (f *ComponentFactory) GPU() *models.Component {
	c := f.Create(models.CategoryGPU)
	c.Brand = "NVIDIA"
	c.Specs = models.Specs{"vram": "12GB"}
	return c
}

// Motherboard creates a catalog motherboard
func (f *ComponentFactory) Motherboard() *models.Component {
	c := f.Create(models.CategoryMotherboard)
	c.Brand = "ASUS"
	c.Specs = models.Specs{"socket": "AM5", "form_factor": "ATX"}
	return c
}

// OwnedBy makes the component private to userID
func (f *ComponentFactory) OwnedBy(category models.ComponentCategory, userID string) *models.Component {
	c := f.Create(category)
	owner := userID
	c.OwnerID = &owner
	return c
}

// BuildFactory provides methods to create test Build data
type BuildFactory struct{}

// NewBuildFactory creates a new BuildFactory
func NewBuildFactory() *BuildFactory {
	return &BuildFactory{}
}

// Create creates a planned build owned by userID
func (f *BuildFactory) Create(userID string) *models.Build {
	return &models.Build{
		UserID:      userID,
		Name:        "Test Build",
		Description: "A test build for testing purposes",
		Status:      models.BuildStatusPlanned,
		TotalCost:   1000,
	}
}

// Sold creates a sold build with sale figures
func (f *BuildFactory) Sold(userID string, salePrice float64) *models.Build {
	b := f.Create(userID)
	b.Status = models.BuildStatusSold
	b.SalePrice = &salePrice
	profit := salePrice - b.TotalCost
	b.Profit = &profit
	return b
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Component *ComponentFactory
	Build     *BuildFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Component: NewComponentFactory(),
		Build:     NewBuildFactory(),
	}
}
