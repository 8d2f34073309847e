package renderer

import (
	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
)

// BattleState is the derived combat status of a snapshot.
type BattleState string

// Battle states. Dead takes precedence over InCombat: a dead adventurer
// is never reported in combat, even with a stale nonzero beast health.
const (
	BattleStateDead     BattleState = "DEAD"
	BattleStateInCombat BattleState = "IN_COMBAT"
	BattleStateNormal   BattleState = "NORMAL"
)

// String returns the state's wire representation.
func (s BattleState) String() string {
	return string(s)
}

// PageMode selects between the forced single battle page and the
// cycling multi-page layout.
type PageMode struct {
	BattleOnly bool
	Count      uint8
}

// BattleStateOf classifies a snapshot. Health is checked before beast
// health; the ordering is load-bearing.
func BattleStateOf(s *adventurer.Snapshot) BattleState {
	if s.Health == 0 {
		return BattleStateDead
	}
	if s.BeastHealth > 0 {
		return BattleStateInCombat
	}
	return BattleStateNormal
}

// IsBattleMode reports whether the battle page set governs display.
// This deliberately diverges from BattleStateOf: a dead adventurer is
// in battle mode for display purposes even though its state is Dead,
// not InCombat.
func IsBattleMode(s *adventurer.Snapshot) bool {
	return s.BeastHealth > 0 || s.Health == 0
}

// PageModeOf derives the page mode: only a live fight forces the single
// battle page; dead and normal adventurers cycle the full page set.
func PageModeOf(s *adventurer.Snapshot) PageMode {
	if BattleStateOf(s) == BattleStateInCombat {
		return PageMode{BattleOnly: true, Count: 1}
	}
	return PageMode{Count: NormalPageCount}
}

// PageCount returns the number of pages the snapshot's mode displays.
func PageCount(s *adventurer.Snapshot) uint8 {
	return PageModeOf(s).Count
}
