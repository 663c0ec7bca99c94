package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Specs holds free-form key/value specifications such as "cores" or "vram"
type Specs map[string]string

// Value stores Specs as a JSON document
func (s Specs) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan reads Specs from a JSON document
func (s *Specs) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// Component represents a hardware part definition.
// A nil OwnerID marks a global catalog entry visible to every user.
type Component struct {
	BaseModel
	Name     string            `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Category ComponentCategory `json:"category" gorm:"type:varchar(20);not null;index" validate:"required"`
	Brand    string            `json:"brand" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Model    string            `json:"model" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Specs    Specs             `json:"specs" gorm:"type:text"`
	OwnerID  *string           `json:"owner_id,omitempty" gorm:"size:64;index"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}

// IsCatalogEntry reports whether the component belongs to the global catalog
func (c *Component) IsCatalogEntry() bool {
	return c.OwnerID == nil
}

// VisibleTo reports whether userID may see the component
func (c *Component) VisibleTo(userID string) bool {
	return c.OwnerID == nil || *c.OwnerID == userID
}

// OwnedBy reports whether the component is a private entry of userID
func (c *Component) OwnedBy(userID string) bool {
	return c.OwnerID != nil && *c.OwnerID == userID
}

func scanJSON(value interface{}, target interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, target)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), target)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", value)
	}
}
