package models

import (
	"github.com/google/uuid"
)

// BuildComponent links a build to one occurrence of a component.
// The pair (BuildID, ComponentID) is intentionally not unique: a build may hold
// the same GPU twice, and each occurrence has its own ID.
type BuildComponent struct {
	BaseModel
	BuildID     uuid.UUID `json:"build_id" gorm:"type:uuid;not null;index:idx_build_component_position,priority:1"`
	ComponentID uuid.UUID `json:"component_id" gorm:"type:uuid;not null;index"`
	Position    int       `json:"position" gorm:"not null;default:0;index:idx_build_component_position,priority:2"`

	// Relationships
	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID"`
}

// TableName returns the table name for BuildComponent
func (BuildComponent) TableName() string {
	return "build_components"
}
