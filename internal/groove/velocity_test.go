package groove

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, p Params) *Generator {
	t.Helper()
	p.Seed = seedPtr(99)
	g, err := New(p)
	require.NoError(t, err)
	return g
}

func TestVelocity_StaticMode(t *testing.T) {
	p := DefaultParams()
	p.Humanize = false
	g := newTestGenerator(t, p)

	assert.Equal(t, 100, g.velocity(Kick, 0, false, false, 0))
	assert.Equal(t, 110, g.velocity(Kick, 0, true, false, 0))
	assert.Equal(t, 40, g.velocity(Snare, 0, false, true, 0))
}

func TestProfileKey(t *testing.T) {
	tests := []struct {
		voice Voice
		ghost bool
		want  string
	}{
		{Kick, false, "kick"},
		{KickAlt, false, "kick"},
		{Snare, false, "snare"},
		{Snare, true, "ghost_snare"},
		{SnareAlt, true, "ghost_snare"},
		{Rim, false, "snare"},
		{HihatClosed, false, "hihat"},
		{HihatOpen, false, "hihat"},
		{Ride, false, "hihat"},
		{TomMid, false, "snare"},
		{Crash, false, "snare"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, profileKey(tt.voice, tt.ghost), "%s ghost=%v", tt.voice, tt.ghost)
	}
}

func TestVelocity_UnknownStyleFallsBack(t *testing.T) {
	p := DefaultParams()
	p.Style = Style("math_rock")
	g := newTestGenerator(t, p)

	for i := 0; i < 100; i++ {
		v := g.velocity(Kick, 0, true, false, 0)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 127)
	}
}

func TestVelocity_ClampBounds(t *testing.T) {
	assert.Equal(t, 1, clampVelocity(-10))
	assert.Equal(t, 1, clampVelocity(0))
	assert.Equal(t, 64, clampVelocity(64))
	assert.Equal(t, 127, clampVelocity(300))
}

func TestBeatPosition(t *testing.T) {
	assert.Equal(t, 0.0, beatPosition(0))
	assert.Equal(t, 0.0, beatPosition(8))
	assert.Equal(t, 1.5, beatPosition(5.5))
	assert.Equal(t, 3.5, beatPosition(15.5))
}

func TestVelocity_GhostsStayQuiet(t *testing.T) {
	// Ghost strokes draw from the ghost profile and never take the downbeat
	// bump, so they stay well under a full backbeat hit.
	p := DefaultParams()
	p.Variation = 0
	g := newTestGenerator(t, p)

	for i := 0; i < 100; i++ {
		ghost := g.velocity(Snare, 0, false, true, 0)
		assert.LessOrEqual(t, ghost, 70)
	}
}
