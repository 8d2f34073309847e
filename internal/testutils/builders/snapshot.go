// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
	"github.com/emberforge/adventurer-api/internal/pkg/shortstr"
)

// SnapshotBuilder provides a fluent interface for building test Snapshot instances
type SnapshotBuilder struct {
	snapshot *adventurer.Snapshot
}

// NewSnapshotBuilder creates a new builder with a live, modestly
// equipped adventurer as the baseline
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		snapshot: &adventurer.Snapshot{
			Name:   shortstr.FromText("Thorin"),
			Health: 100,
			XP:     400,
			Level:  2,
			Gold:   25,
			Stats: adventurer.Stats{
				Strength:  3,
				Dexterity: 2,
				Vitality:  1,
				Wisdom:    2,
				Luck:      1,
			},
			Equipment: adventurer.Equipment{
				Weapon: adventurer.Item{ID: 12, XP: 100, Name: "Short Sword", Tier: adventurer.Tier3, Slot: adventurer.SlotWeapon},
				Chest:  adventurer.Item{ID: 47, XP: 25, Name: "Leather Armor", Tier: adventurer.Tier5, Slot: adventurer.SlotChest},
			},
		},
	}
}

// WithName sets the packed adventurer name from plain text
func (b *SnapshotBuilder) WithName(name string) *SnapshotBuilder {
	b.snapshot.Name = shortstr.FromText(name)
	return b
}

// WithHealth sets current health
func (b *SnapshotBuilder) WithHealth(health uint16) *SnapshotBuilder {
	b.snapshot.Health = health
	return b
}

// WithBeastHealth sets the opposing creature's health
func (b *SnapshotBuilder) WithBeastHealth(health uint16) *SnapshotBuilder {
	b.snapshot.BeastHealth = health
	return b
}

// WithLevel sets the adventurer level
func (b *SnapshotBuilder) WithLevel(level uint8) *SnapshotBuilder {
	b.snapshot.Level = level
	return b
}

// WithGold sets the gold balance
func (b *SnapshotBuilder) WithGold(gold uint16) *SnapshotBuilder {
	b.snapshot.Gold = gold
	return b
}

// WithStats replaces the whole stat block
func (b *SnapshotBuilder) WithStats(stats adventurer.Stats) *SnapshotBuilder {
	b.snapshot.Stats = stats
	return b
}

// WithEquipment replaces the equipped item set
func (b *SnapshotBuilder) WithEquipment(equipment adventurer.Equipment) *SnapshotBuilder {
	b.snapshot.Equipment = equipment
	return b
}

// WithBagItem places an item in the given bag slot
func (b *SnapshotBuilder) WithBagItem(slot int, item adventurer.Item) *SnapshotBuilder {
	b.snapshot.Bag[slot] = item
	return b
}

// Zeroed resets every field, producing the all-zero snapshot
func (b *SnapshotBuilder) Zeroed() *SnapshotBuilder {
	b.snapshot = &adventurer.Snapshot{}
	return b
}

// Maxed sets every numeric field to the top of its declared width
func (b *SnapshotBuilder) Maxed() *SnapshotBuilder {
	maxItem := adventurer.Item{ID: 255, XP: 65535, Name: "Pendant of Ancient Power", Tier: adventurer.Tier1, Slot: adventurer.SlotNeck}
	b.snapshot = &adventurer.Snapshot{
		Name:        shortstr.FromText("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"), // 31 chars, the packed maximum
		Health:      65535,
		XP:          4294967295,
		Level:       255,
		Gold:        65535,
		BeastHealth: 0,
		Stats: adventurer.Stats{
			Strength: 255, Dexterity: 255, Vitality: 255, Intelligence: 255,
			Wisdom: 255, Charisma: 255, Luck: 255,
		},
		Equipment: adventurer.Equipment{
			Weapon: maxItem, Chest: maxItem, Head: maxItem, Waist: maxItem,
			Foot: maxItem, Hand: maxItem, Neck: maxItem, Ring: maxItem,
		},
	}
	for i := range b.snapshot.Bag {
		b.snapshot.Bag[i] = maxItem
	}
	return b
}

// Build returns the assembled snapshot
func (b *SnapshotBuilder) Build() *adventurer.Snapshot {
	return b.snapshot
}
