package groove

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillsFor(t *testing.T) {
	assert.Len(t, fillsFor(RudimentRolls), 4)
	assert.Len(t, fillsFor(RudimentDiddles), 4)
	assert.Len(t, fillsFor(RudimentFlams), 3)
	assert.Len(t, fillsFor(RudimentDrags), 3)
	assert.Len(t, fillsFor(RudimentMixed), len(fillCatalog))
	assert.Len(t, fillsFor(RudimentType("brushes")), len(fillCatalog))
}

func TestFillSubsetNames(t *testing.T) {
	for rudiment, names := range rudimentSets {
		subset := fillsFor(rudiment)
		require.Len(t, subset, len(names), "rudiment %s", rudiment)
		for i, f := range subset {
			// fillsFor preserves catalog order; just assert membership.
			assert.Contains(t, names, f.name, "rudiment %s index %d", rudiment, i)
		}
	}
}

func TestIntensityFactor(t *testing.T) {
	p := DefaultParams()

	p.RudimentIntensity = 0
	g := newTestGenerator(t, p)
	assert.Equal(t, 0.5, g.intensityFactor())
	assert.Equal(t, 4, g.scaledCount(8, 4))
	assert.Equal(t, 8, g.scaledCount(8, 8))

	p.RudimentIntensity = 1
	g = newTestGenerator(t, p)
	assert.Equal(t, 1.0, g.intensityFactor())
	assert.Equal(t, 8, g.scaledCount(8, 4))
}

// Every fill algorithm keeps its hits inside the bar (graces near the start
// are dropped, never negative) and lands the closing crash on the next
// downbeat.
func TestFillCatalog_Bounds(t *testing.T) {
	for _, f := range fillCatalog {
		t.Run(f.name, func(t *testing.T) {
			p := DefaultParams()
			p.Humanize = false
			p.RudimentIntensity = 1.0
			g := newTestGenerator(t, p)

			sc := newScore()
			f.play(g, sc, 0)

			crashed := false
			for voice, hits := range sc.voices {
				for _, h := range hits {
					assert.GreaterOrEqual(t, h.Time, 0.0, "voice %s", voice)
					assert.LessOrEqual(t, h.Time, beatsPerBar, "voice %s", voice)
				}
				if voice == Crash {
					for _, h := range hits {
						if h.Time == beatsPerBar {
							crashed = true
						}
					}
				}
			}
			assert.True(t, crashed, "fill %s did not land the closing crash", f.name)
		})
	}
}

// Low intensity must not scale any fill below its minimum note count.
func TestFillCatalog_MinimumCounts(t *testing.T) {
	for _, f := range fillCatalog {
		t.Run(f.name, func(t *testing.T) {
			p := DefaultParams()
			p.Humanize = false
			p.Density = 0.0
			p.RudimentIntensity = 0.0
			g := newTestGenerator(t, p)

			sc := newScore()
			f.play(g, sc, 0)

			total := 0
			for _, hits := range sc.voices {
				total += len(hits)
			}
			// Closing crash plus at least a minimal figure.
			assert.GreaterOrEqual(t, total, 4, "fill %s too sparse", f.name)
		})
	}
}

func TestTomRun_DropsRemainder(t *testing.T) {
	p := DefaultParams()
	p.Humanize = false
	p.Density = 1.0
	p.RudimentIntensity = 0.5 // factor 0.75: 8 -> 6 subdivisions, 1 per tom
	g := newTestGenerator(t, p)

	sc := newScore()
	g.tomRun(sc, 0, tomsDescending)

	tomHits := 0
	for _, tom := range tomsDescending {
		tomHits += len(sc.voices[tom])
	}
	// 6 subdivisions over 4 toms truncates to 1 per tom.
	assert.Equal(t, 4, tomHits)
}

func TestBuzzRoll_GracesDroppedAtBarStart(t *testing.T) {
	p := DefaultParams()
	p.Humanize = false
	p.RudimentIntensity = 1.0
	g := newTestGenerator(t, p)

	sc := newScore()
	fillBuzzRoll(g, sc, 0)

	for _, h := range sc.voices[Snare] {
		assert.GreaterOrEqual(t, h.Time, 0.0)
	}
}

func TestStrokeRolls_ResolveAccented(t *testing.T) {
	p := DefaultParams()
	p.Humanize = false
	g := newTestGenerator(t, p)

	sc := newScore()
	fillFiveStrokeRoll(g, sc, 0)

	// Two tap groups of four at 0.125 spacing, each resolving on an accent.
	require.Len(t, sc.voices[Snare], 10)
	resolve := sc.voices[Snare][4]
	assert.Equal(t, 2.5, resolve.Time)
	assert.Equal(t, 110, resolve.Velocity)
}
