// Package gamemath provides the integer arithmetic behind derived
// adventurer values: item greatness, maximum health, and health-bar
// geometry. All functions are total and overflow-safe for their full
// input ranges.
package gamemath

const (
	// MaxGreatness caps the level an item can derive from its XP.
	MaxGreatness = 20

	// BaseHealth and HealthPerVitality define the max-health formula.
	BaseHealth        = 100
	HealthPerVitality = 15

	// HealthBarMaxWidth is the filled width of a full health bar, in
	// canvas units.
	HealthBarMaxWidth = 300

	// HealthBarMinWidth keeps a nonzero health visible as a sliver.
	HealthBarMinWidth = 2
)

// HealthBand classifies remaining health for bar coloring.
type HealthBand uint8

// Health bands, from full to empty.
const (
	HealthBandHealthy HealthBand = iota
	HealthBandWarning
	HealthBandCritical
)

// Isqrt returns the integer square root of v. The division form of
// Newton's method avoids squaring, so no intermediate overflows even at
// the top of the uint64 range.
func Isqrt(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}

// Greatness derives an item's 1..MaxGreatness level from its XP.
// Zero XP counts as greatness 1.
func Greatness(xp uint16) uint8 {
	if xp == 0 {
		return 1
	}
	g := Isqrt(uint64(xp))
	if g > MaxGreatness {
		return MaxGreatness
	}
	return uint8(g)
}

// MaxHealth computes 100 + vitality*15. The result fits uint16 for the
// full vitality range (100 + 255*15 = 3925).
func MaxHealth(vitality uint8) uint16 {
	return BaseHealth + uint16(vitality)*HealthPerVitality
}

// HealthBarWidth returns the filled bar width for the given health out
// of maxHealth: proportional, clamped to a minimum visible width when
// health is nonzero, and never wider than the bar itself.
func HealthBarWidth(health, maxHealth uint16) int {
	if maxHealth == 0 {
		return 0
	}
	w := int(uint32(health) * HealthBarMaxWidth / uint32(maxHealth))
	if health > 0 && w < HealthBarMinWidth {
		w = HealthBarMinWidth
	}
	if w > HealthBarMaxWidth {
		w = HealthBarMaxWidth
	}
	return w
}

// HealthBandOf buckets health into healthy (>=75%), warning (25..74%),
// or critical (<25%, including zero).
func HealthBandOf(health, maxHealth uint16) HealthBand {
	if maxHealth == 0 {
		return HealthBandCritical
	}
	pct := uint32(health) * 100 / uint32(maxHealth)
	switch {
	case pct >= 75:
		return HealthBandHealthy
	case pct >= 25:
		return HealthBandWarning
	default:
		return HealthBandCritical
	}
}
