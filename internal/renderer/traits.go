package renderer

import (
	"strconv"

	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
)

// Trait is one name/value attribute in the metadata trait list.
type Trait struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// hiddenStat masks pre-roll stats: until the adventurer levels past 1,
// the six rollable stats report "?". Luck is always numeric.
const hiddenStat = "?"

// Traits returns the fixed-order trait list: the seven stats, the core
// progression numbers, then the eight equipment names. Always at least
// 18 entries.
func Traits(s *adventurer.Snapshot) []Trait {
	hideStats := s.Level == 1

	stat := func(v uint8) string {
		if hideStats {
			return hiddenStat
		}
		return strconv.FormatUint(uint64(v), 10)
	}

	traits := make([]Trait, 0, 18)
	traits = append(traits,
		Trait{Name: "Strength", Value: stat(s.Stats.Strength)},
		Trait{Name: "Dexterity", Value: stat(s.Stats.Dexterity)},
		Trait{Name: "Vitality", Value: stat(s.Stats.Vitality)},
		Trait{Name: "Intelligence", Value: stat(s.Stats.Intelligence)},
		Trait{Name: "Wisdom", Value: stat(s.Stats.Wisdom)},
		Trait{Name: "Charisma", Value: stat(s.Stats.Charisma)},
		Trait{Name: "Luck", Value: strconv.FormatUint(uint64(s.Stats.Luck), 10)},
		Trait{Name: "Health", Value: strconv.FormatUint(uint64(s.Health), 10)},
		Trait{Name: "Level", Value: strconv.FormatUint(uint64(s.Level), 10)},
		Trait{Name: "Gold", Value: strconv.FormatUint(uint64(s.Gold), 10)},
	)

	items := s.Equipment.Slots()
	for i, item := range items {
		value := "None"
		if !item.IsEmpty() && item.Name != "" {
			value = item.Name
		}
		traits = append(traits, Trait{
			Name:  adventurer.SlotLabels[adventurer.AllSlots[i]],
			Value: value,
		})
	}
	return traits
}
