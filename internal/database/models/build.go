package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// PriceBreakdown maps a cost category (e.g. "gpu", "case", "shipping") to an amount
type PriceBreakdown map[string]float64

// Value stores the breakdown as a JSON document
func (p PriceBreakdown) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan reads the breakdown from a JSON document
func (p *PriceBreakdown) Scan(value interface{}) error {
	return scanJSON(value, p)
}

// Total returns the sum of all category amounts
func (p PriceBreakdown) Total() float64 {
	var total float64
	for _, amount := range p {
		total += amount
	}
	return total
}

// Build is a user-owned assembly of components tracked through planning and sale
type Build struct {
	BaseModel
	UserID         string         `json:"user_id" gorm:"size:64;not null;index"`
	Name           string         `json:"name" gorm:"size:200;not null"`
	Description    string         `json:"description" gorm:"type:text"`
	Status         BuildStatus    `json:"status" gorm:"type:varchar(20);not null;default:'planned'"`
	TotalCost      float64        `json:"total_cost" gorm:"not null;default:0"`
	SalePrice      *float64       `json:"sale_price,omitempty"`
	SoldDate       *time.Time     `json:"sold_date,omitempty"`
	Profit         *float64       `json:"profit,omitempty"`
	ImageRef       string         `json:"image_ref,omitempty" gorm:"size:500"`
	PriceBreakdown PriceBreakdown `json:"price_breakdown,omitempty" gorm:"type:text"`

	// Relationships
	Components []BuildComponent `json:"components,omitempty" gorm:"foreignKey:BuildID"`
}

// TableName returns the table name for Build
func (Build) TableName() string {
	return "builds"
}
