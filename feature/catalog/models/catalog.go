package models

import (
	"errors"
	"fmt"
	"time"
)

// Entity kinds used in reconcile keys.
const (
	KindCharacter  = "character"
	KindMaterial   = "material"
	KindFurnishing = "furnishing"
	KindGiftSet    = "gift_set"
)

// Character is a collectible character that can claim gift sets.
type Character struct {
	ID        uint      `gorm:"primaryKey" json:"-" yaml:"-"`
	Name      string    `gorm:"size:191;uniqueIndex;not null" json:"name" yaml:"name"`
	CreatedAt time.Time `json:"-" yaml:"-"`
}

// Material is a raw crafting ingredient.
type Material struct {
	ID        uint      `gorm:"primaryKey" json:"-" yaml:"-"`
	Name      string    `gorm:"size:191;uniqueIndex;not null" json:"name" yaml:"name"`
	CreatedAt time.Time `json:"-" yaml:"-"`
}

// Furnishing is a placeable item, crafted from materials or bought.
type Furnishing struct {
	ID        uint      `gorm:"primaryKey" json:"-" yaml:"-"`
	Name      string    `gorm:"size:191;uniqueIndex;not null" json:"name" yaml:"name"`
	CreatedAt time.Time `json:"-" yaml:"-"`
}

// Tables lists the catalog table models in migration order.
func Tables() []any {
	return []any{&Character{}, &Material{}, &Furnishing{}, &GiftSet{}}
}

// Ingredient is one material line of a furnishing recipe.
type Ingredient struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Requirement is one furnishing line of a gift set. An empty Recipe means
// the furnishing cannot be crafted and must be bought.
type Requirement struct {
	Name   string       `json:"name" yaml:"name"`
	Recipe []Ingredient `json:"recipe" yaml:"recipe"`
	Amount int          `json:"amount" yaml:"amount"`
}

// GiftSet is a bundle of furnishings that grants a reward to each listed
// character once placed.
type GiftSet struct {
	ID           uint          `gorm:"primaryKey" json:"-" yaml:"-"`
	Name         string        `gorm:"size:191;uniqueIndex;not null" json:"name" yaml:"name"`
	Type         string        `gorm:"size:64" json:"type" yaml:"type"`
	Characters   []string      `gorm:"serializer:json" json:"characters" yaml:"characters"`
	Requirements []Requirement `gorm:"serializer:json" json:"materials" yaml:"materials"`
	CreatedAt    time.Time     `json:"-" yaml:"-"`
	UpdatedAt    time.Time     `json:"-" yaml:"-"`
}

// TableName returns the table name for gift sets.
func (GiftSet) TableName() string {
	return "gift_sets"
}

// Validate rejects gift sets the calculator cannot work with.
func (g *GiftSet) Validate() error {
	if g.Name == "" {
		return errors.New("gift set without name")
	}
	if len(g.Characters) == 0 {
		return fmt.Errorf("gift set %q lists no characters", g.Name)
	}
	for i, r := range g.Requirements {
		if r.Name == "" {
			return fmt.Errorf("gift set %q: requirement %d has no furnishing name", g.Name, i)
		}
		if r.Amount <= 0 {
			return fmt.Errorf("gift set %q: %s has non-positive amount %d", g.Name, r.Name, r.Amount)
		}
		for _, ing := range r.Recipe {
			if ing.Name == "" || ing.Quantity <= 0 {
				return fmt.Errorf("gift set %q: %s has invalid recipe line %+v", g.Name, r.Name, ing)
			}
		}
	}
	return nil
}

// Grants reports whether character can claim the set.
func (g *GiftSet) Grants(character string) bool {
	for _, c := range g.Characters {
		if c == character {
			return true
		}
	}
	return false
}

// Catalog is the full static reference data. It is both the shape of the
// catalog document in object storage and the cached database snapshot.
type Catalog struct {
	Characters  []string  `json:"characters" yaml:"characters"`
	Materials   []string  `json:"materials" yaml:"materials"`
	Furnishings []string  `json:"furnishings" yaml:"furnishings"`
	GiftSets    []GiftSet `json:"gift_sets" yaml:"gift_sets"`
}

// Entry is one catalog entity addressed by kind and name.
type Entry struct {
	Kind string
	Name string
	// Set is populated for KindGiftSet.
	Set *GiftSet
}

// Key returns the reconcile key of the entry, e.g. "material/Fabric".
func (e Entry) Key() string {
	return Key(e.Kind, e.Name)
}

// Key builds a reconcile key.
func Key(kind, name string) string {
	return kind + "/" + name
}

// Entries indexes every catalog entity by its key.
func (c *Catalog) Entries() map[string]Entry {
	out := make(map[string]Entry, len(c.Characters)+len(c.Materials)+len(c.Furnishings)+len(c.GiftSets))
	add := func(kind string, names []string) {
		for _, n := range names {
			e := Entry{Kind: kind, Name: n}
			out[e.Key()] = e
		}
	}
	add(KindCharacter, c.Characters)
	add(KindMaterial, c.Materials)
	add(KindFurnishing, c.Furnishings)
	for i := range c.GiftSets {
		set := c.GiftSets[i]
		e := Entry{Kind: KindGiftSet, Name: set.Name, Set: &set}
		out[e.Key()] = e
	}
	return out
}

// SetCharacters maps each gift set name to the characters it grants.
func (c *Catalog) SetCharacters() map[string][]string {
	out := make(map[string][]string, len(c.GiftSets))
	for _, s := range c.GiftSets {
		out[s.Name] = s.Characters
	}
	return out
}

// SetNames returns gift set names in catalog order.
func (c *Catalog) SetNames() []string {
	out := make([]string, len(c.GiftSets))
	for i, s := range c.GiftSets {
		out[i] = s.Name
	}
	return out
}
