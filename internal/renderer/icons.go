package renderer

import (
	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
)

// Static vector-path snippets for each equipment slot type, drawn in a
// 24x24 local frame and scaled at the call site. Paths are stylized
// silhouettes, not detailed art; what matters is that each slot reads
// distinctly at badge size.
var slotIconPaths = map[adventurer.Slot]string{
	adventurer.SlotWeapon: "M4 20 L18 6 L20 4 L22 6 L20 8 L6 22 Z M16 4 L20 8 M3 17 L7 21",
	adventurer.SlotChest:  "M6 4 L18 4 L20 8 L20 18 L12 22 L4 18 L4 8 Z M8 4 L8 10 M16 4 L16 10",
	adventurer.SlotHead:   "M12 3 C6 3 5 8 5 12 L5 18 L8 16 L10 19 L12 17 L14 19 L16 16 L19 18 L19 12 C19 8 18 3 12 3 Z",
	adventurer.SlotWaist:  "M3 10 L21 10 L21 14 L3 14 Z M9 9 L15 9 L15 15 L9 15 Z M11 11 L13 11 L13 13 L11 13 Z",
	adventurer.SlotFoot:   "M7 3 L12 3 L12 12 L18 14 L21 17 L21 21 L5 21 L5 14 L7 12 Z",
	adventurer.SlotHand:   "M6 21 L6 9 L8 4 L9 9 L10 3 L11 9 L12 3 L13 9 L14 4 L16 9 L16 21 Z",
	adventurer.SlotNeck:   "M6 3 C6 9 9 12 12 13 C15 12 18 9 18 3 M12 13 L12 16 M9 19 A3 3 0 1 0 15 19 A3 3 0 1 0 9 19",
	adventurer.SlotRing:   "M12 8 A6 6 0 1 0 12 20 A6 6 0 1 0 12 8 M9 8 L12 3 L15 8",
}

// genericIconPath marks an occupied slot whose type is unknown.
const genericIconPath = "M5 5 L19 5 L19 19 L5 19 Z M5 12 L19 12 M12 5 L12 19"

// SlotIconPath returns the icon path for a slot type, falling back to a
// generic marker for unrecognized slots.
func SlotIconPath(slot adventurer.Slot) string {
	if d, ok := slotIconPaths[slot]; ok {
		return d
	}
	return genericIconPath
}
