package renderer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberforge/adventurer-api/internal/renderer"
	"github.com/emberforge/adventurer-api/internal/testutils/builders"
)

func TestBattleStateOf(t *testing.T) {
	tests := []struct {
		name        string
		health      uint16
		beastHealth uint16
		want        renderer.BattleState
	}{
		{"alive and unengaged", 100, 0, renderer.BattleStateNormal},
		{"alive and fighting", 10, 50, renderer.BattleStateInCombat},
		{"dead with no beast", 0, 0, renderer.BattleStateDead},
		{"dead with stale beast health", 0, 50, renderer.BattleStateDead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := builders.NewSnapshotBuilder().
				WithHealth(tt.health).
				WithBeastHealth(tt.beastHealth).
				Build()
			assert.Equal(t, tt.want, renderer.BattleStateOf(s))
		})
	}
}

// A dead adventurer is displayed in battle mode even though its state is
// Dead rather than InCombat.
func TestIsBattleModeDivergesFromState(t *testing.T) {
	dead := builders.NewSnapshotBuilder().WithHealth(0).Build()
	assert.Equal(t, renderer.BattleStateDead, renderer.BattleStateOf(dead))
	assert.True(t, renderer.IsBattleMode(dead))

	fighting := builders.NewSnapshotBuilder().WithHealth(10).WithBeastHealth(30).Build()
	assert.True(t, renderer.IsBattleMode(fighting))

	normal := builders.NewSnapshotBuilder().WithHealth(10).Build()
	assert.False(t, renderer.IsBattleMode(normal))
}

func TestPageModeOf(t *testing.T) {
	fighting := builders.NewSnapshotBuilder().WithHealth(10).WithBeastHealth(30).Build()
	assert.Equal(t, renderer.PageMode{BattleOnly: true, Count: 1}, renderer.PageModeOf(fighting))

	// dead adventurers cycle the normal pages, battle mode or not
	dead := builders.NewSnapshotBuilder().WithHealth(0).Build()
	assert.Equal(t, renderer.PageMode{Count: renderer.NormalPageCount}, renderer.PageModeOf(dead))

	normal := builders.NewSnapshotBuilder().Build()
	assert.Equal(t, renderer.PageMode{Count: renderer.NormalPageCount}, renderer.PageModeOf(normal))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, uint8(1), renderer.PageCount(builders.NewSnapshotBuilder().WithBeastHealth(5).Build()))
	assert.Equal(t, uint8(renderer.NormalPageCount), renderer.PageCount(builders.NewSnapshotBuilder().Build()))
}
