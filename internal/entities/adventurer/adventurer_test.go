package adventurer_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
	"github.com/emberforge/adventurer-api/internal/testutils/builders"
)

func TestItemIsEmpty(t *testing.T) {
	assert.True(t, adventurer.Item{}.IsEmpty())
	assert.True(t, adventurer.Item{XP: 50, Name: "Ghost"}.IsEmpty(), "ID decides emptiness")
	assert.False(t, adventurer.Item{ID: 1}.IsEmpty())
}

func TestItemGreatness(t *testing.T) {
	assert.Equal(t, uint8(1), adventurer.Item{ID: 1}.Greatness())
	assert.Equal(t, uint8(10), adventurer.Item{ID: 1, XP: 100}.Greatness())
	assert.Equal(t, uint8(20), adventurer.Item{ID: 1, XP: 65535}.Greatness())
}

func TestEquipmentSlotsOrder(t *testing.T) {
	e := adventurer.Equipment{
		Weapon: adventurer.Item{ID: 1},
		Chest:  adventurer.Item{ID: 2},
		Head:   adventurer.Item{ID: 3},
		Waist:  adventurer.Item{ID: 4},
		Foot:   adventurer.Item{ID: 5},
		Hand:   adventurer.Item{ID: 6},
		Neck:   adventurer.Item{ID: 7},
		Ring:   adventurer.Item{ID: 8},
	}

	slots := e.Slots()
	require.Len(t, slots, adventurer.EquipmentSize)
	for i, item := range slots {
		assert.Equal(t, uint8(i+1), item.ID, "slot %s out of render order", adventurer.AllSlots[i])
	}
}

func TestSlotLabelsCoverAllSlots(t *testing.T) {
	for _, slot := range adventurer.AllSlots {
		assert.NotEmpty(t, adventurer.SlotLabels[slot], "missing label for %s", slot)
	}
}

func TestSnapshotMaxHealth(t *testing.T) {
	s := builders.NewSnapshotBuilder().WithStats(adventurer.Stats{Vitality: 4}).Build()
	assert.Equal(t, uint16(160), s.MaxHealth())

	zero := builders.NewSnapshotBuilder().Zeroed().Build()
	assert.Equal(t, uint16(100), zero.MaxHealth())
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	s := builders.NewSnapshotBuilder().
		WithName("Feyra").
		WithBagItem(0, adventurer.Item{ID: 9, XP: 16, Name: "Grimoire", Tier: adventurer.Tier2, Slot: adventurer.SlotHand}).
		Build()

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded adventurer.Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Feyra", decoded.Name.Decode())
	assert.Equal(t, s.Stats, decoded.Stats)
	assert.Equal(t, s.Equipment, decoded.Equipment)
	assert.Equal(t, s.Bag, decoded.Bag)
}
