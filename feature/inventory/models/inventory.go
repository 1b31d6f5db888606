package models

import (
	"time"

	"gorm.io/datatypes"
)

// Category names one independently persisted part of an inventory.
type Category string

const (
	CategoryCharacters  Category = "characters"
	CategoryMaterials   Category = "materials"
	CategoryFurnishings Category = "furnishings"
	CategorySets        Category = "sets"
)

// Column returns the database column storing the category.
func (c Category) Column() string {
	return string(c)
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryCharacters, CategoryMaterials, CategoryFurnishings, CategorySets:
		return true
	}
	return false
}

// SetClaims records which characters have claimed one gift set.
type SetClaims struct {
	Name       string          `json:"name"`
	Characters map[string]bool `json:"characters"`
}

// Inventory is the stored ownership record of one user.
type Inventory struct {
	ID          uint                                `gorm:"primaryKey" json:"-"`
	UserID      string                              `gorm:"size:64;uniqueIndex;not null" json:"user_id"`
	Characters  datatypes.JSONType[map[string]bool] `json:"characters"`
	Materials   datatypes.JSONType[map[string]int]  `json:"materials"`
	Furnishings datatypes.JSONType[map[string]int]  `json:"furnishings"`
	Sets        datatypes.JSONType[[]SetClaims]     `json:"sets"`
	// Version increases by one on every category write.
	Version   int64     `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CharacterRow is one line of the characters table.
type CharacterRow struct {
	Name  string `json:"name"`
	Owned bool   `json:"owned"`
}

// QuantityRow is one line of the materials or furnishings table.
type QuantityRow struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// SetRow is one (gift set, character) line of the sets table.
type SetRow struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Claimed   bool   `json:"claimed"`
}

// Tables is the reconciled, fully populated view of an inventory.
type Tables struct {
	Characters  []CharacterRow `json:"characters"`
	Materials   []QuantityRow  `json:"materials"`
	Furnishings []QuantityRow  `json:"furnishings"`
	Sets        []SetRow       `json:"sets"`
	Version     int64          `json:"version"`
}
