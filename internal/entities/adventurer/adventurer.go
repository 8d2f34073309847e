// Package adventurer implements the adventurer snapshot entities.
package adventurer

// NOTE: These are data-only structs. All derived values (greatness,
// max health, battle state) are computed by gamemath and the renderer,
// not here.

import (
	"github.com/emberforge/adventurer-api/internal/pkg/gamemath"
	"github.com/emberforge/adventurer-api/internal/pkg/shortstr"
)

// BagSize is the fixed number of item bag slots.
const BagSize = 15

// EquipmentSize is the fixed number of equipment slots.
const EquipmentSize = 8

// Snapshot is the immutable adventurer record supplied per query by the
// upstream indexer. Every numeric field is bounded by its declared
// width; a zero item ID means the slot is empty.
type Snapshot struct {
	Name        shortstr.String `json:"name"`
	Health      uint16          `json:"health"`
	XP          uint32          `json:"xp"`
	Level       uint8           `json:"level"`
	Gold        uint16          `json:"gold"`
	BeastHealth uint16          `json:"beastHealth"`
	Stats       Stats           `json:"stats"`
	Equipment   Equipment       `json:"equipment"`
	Bag         [BagSize]Item   `json:"bag"`
}

// Stats is the seven-attribute stat block.
type Stats struct {
	Strength     uint8 `json:"strength"`
	Dexterity    uint8 `json:"dexterity"`
	Vitality     uint8 `json:"vitality"`
	Intelligence uint8 `json:"intelligence"`
	Wisdom       uint8 `json:"wisdom"`
	Charisma     uint8 `json:"charisma"`
	Luck         uint8 `json:"luck"`
}

// Equipment is the fixed eight-slot equipped item set. Field order is
// render order.
type Equipment struct {
	Weapon Item `json:"weapon"`
	Chest  Item `json:"chest"`
	Head   Item `json:"head"`
	Waist  Item `json:"waist"`
	Foot   Item `json:"foot"`
	Hand   Item `json:"hand"`
	Neck   Item `json:"neck"`
	Ring   Item `json:"ring"`
}

// Item is one equipment or bag slot. Name, Tier, and Slot are resolved
// by the indexer from the item ID; they are zero-valued when the slot
// is empty.
type Item struct {
	ID   uint8  `json:"id"`
	XP   uint16 `json:"xp"`
	Name string `json:"name,omitempty"`
	Tier uint8  `json:"tier,omitempty"`
	Slot Slot   `json:"slot,omitempty"`
}

// IsEmpty reports whether the slot holds no item.
func (i Item) IsEmpty() bool {
	return i.ID == 0
}

// Greatness derives the item's 1..20 level from its XP.
func (i Item) Greatness() uint8 {
	return gamemath.Greatness(i.XP)
}

// Slots returns the equipped items in render order, paired with
// AllSlots for labeling.
func (e Equipment) Slots() [EquipmentSize]Item {
	return [EquipmentSize]Item{e.Weapon, e.Chest, e.Head, e.Waist, e.Foot, e.Hand, e.Neck, e.Ring}
}

// MaxHealth returns the snapshot's health ceiling, 100 + vitality*15.
func (s *Snapshot) MaxHealth() uint16 {
	return gamemath.MaxHealth(s.Stats.Vitality)
}
