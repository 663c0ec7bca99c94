package models

// ComponentCategory is the hardware category of a component
type ComponentCategory string

const (
	CategoryCPU         ComponentCategory = "cpu"
	CategoryGPU         ComponentCategory = "gpu"
	CategoryMotherboard ComponentCategory = "motherboard"
)

// BuildStatus tracks a build from planning to sale
type BuildStatus string

const (
	BuildStatusPlanned    BuildStatus = "planned"
	BuildStatusInProgress BuildStatus = "in-progress"
	BuildStatusCompleted  BuildStatus = "completed"
	BuildStatusSold       BuildStatus = "sold"
)

// IsValid checks if the ComponentCategory is valid
func (c ComponentCategory) IsValid() bool {
	switch c {
	case CategoryCPU, CategoryGPU, CategoryMotherboard:
		return true
	}
	return false
}

// IsSingleton reports whether a build may hold at most one component of this category
func (c ComponentCategory) IsSingleton() bool {
	return c == CategoryCPU || c == CategoryMotherboard
}

// IsValid checks if the BuildStatus is valid
func (s BuildStatus) IsValid() bool {
	switch s {
	case BuildStatusPlanned, BuildStatusInProgress, BuildStatusCompleted, BuildStatusSold:
		return true
	}
	return false
}
