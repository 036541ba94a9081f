package groove

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPtr(s int64) *int64 { return &s }

func staticParams() Params {
	p := DefaultParams()
	p.Humanize = false
	p.Density = 1.0
	p.Variation = 0.0
	p.Syncopation = 0.0
	p.FillFrequency = 0.0
	return p
}

func TestGenerator_Deterministic(t *testing.T) {
	p := DefaultParams()
	p.Seed = seedPtr(42)
	p.Bars = 8

	first, err := New(p)
	require.NoError(t, err)
	second, err := New(p)
	require.NoError(t, err)

	assert.Equal(t, first.Generate(), second.Generate())
}

func TestGenerator_SeedsDiverge(t *testing.T) {
	p := DefaultParams()
	p.Bars = 8

	p.Seed = seedPtr(1)
	a, err := New(p)
	require.NoError(t, err)

	p.Seed = seedPtr(2)
	b, err := New(p)
	require.NoError(t, err)

	assert.NotEqual(t, a.Generate().Voices, b.Generate().Voices)
}

// With humanization off and every stochastic knob pinned, the output is a
// fully specified one-bar groove.
func TestGenerator_StaticFourOnTheFloor(t *testing.T) {
	p := staticParams()
	p.Tempo = 120
	p.Bars = 1
	p.KickPattern = KickFourFloor
	p.HihatPattern = HihatEighth

	gen, err := New(p)
	require.NoError(t, err)
	pattern := gen.Generate()

	assert.Equal(t, 120, pattern.Tempo)
	assert.Equal(t, 1, pattern.Bars)
	assert.False(t, pattern.Humanized)
	assert.Equal(t, 2, pattern.Complexity)

	assert.Equal(t, []Hit{
		{Time: 0, Velocity: 110},
		{Time: 1, Velocity: 100},
		{Time: 2, Velocity: 100},
		{Time: 3, Velocity: 100},
	}, pattern.Voices[Kick])

	assert.Equal(t, []Hit{
		{Time: 1, Velocity: 110},
		{Time: 3, Velocity: 110},
	}, pattern.Voices[Snare])

	assert.Equal(t, []Hit{
		{Time: 0, Velocity: 110},
		{Time: 0.5, Velocity: 100},
		{Time: 1, Velocity: 100},
		{Time: 1.5, Velocity: 100},
		{Time: 2, Velocity: 110},
		{Time: 2.5, Velocity: 100},
		{Time: 3, Velocity: 100},
		{Time: 3.5, Velocity: 100},
	}, pattern.Voices[HihatClosed])

	// Alternate samples never fire without humanization.
	assert.NotContains(t, pattern.Voices, KickAlt)
	assert.NotContains(t, pattern.Voices, SnareAlt)
}

// Beats 2 and 4 carry a snare (or, for reggae_ska, a rim) in every groove bar
// of every style.
func TestGenerator_BackbeatInvariant(t *testing.T) {
	for _, style := range Styles() {
		t.Run(string(style), func(t *testing.T) {
			p := staticParams()
			p.Style = style
			p.Bars = 4
			p.Seed = seedPtr(7)

			gen, err := New(p)
			require.NoError(t, err)
			pattern := gen.Generate()

			backbeat := make(map[float64]bool)
			for _, h := range pattern.Voices[Snare] {
				backbeat[h.Time] = true
			}
			for _, h := range pattern.Voices[Rim] {
				backbeat[h.Time] = true
			}

			for bar := 0; bar < p.Bars; bar++ {
				offset := float64(bar) * beatsPerBar
				assert.True(t, backbeat[offset+1], "bar %d beat 2", bar)
				assert.True(t, backbeat[offset+3], "bar %d beat 4", bar)
			}
		})
	}
}

func TestGenerator_VelocityBounds(t *testing.T) {
	for _, style := range Styles() {
		for seed := int64(0); seed < 5; seed++ {
			p := DefaultParams()
			p.Style = style
			p.Bars = 16
			p.Density = 1.0
			p.Variation = 1.0
			p.Syncopation = 1.0
			p.FillFrequency = 1.0
			p.Seed = seedPtr(seed)

			gen, err := New(p)
			require.NoError(t, err)

			for voice, hits := range gen.Generate().Voices {
				for _, h := range hits {
					assert.GreaterOrEqual(t, h.Velocity, 1, "voice %s", voice)
					assert.LessOrEqual(t, h.Velocity, 127, "voice %s", voice)
				}
			}
		}
	}
}

// Roll fills touch only the snare plus the closing crash (with kick for the
// stroke rolls); no hats or toms may leak in.
func TestGenerator_FillsOnlyRolls(t *testing.T) {
	allowed := map[Voice]bool{Snare: true, Crash: true, Kick: true}

	for seed := int64(0); seed < 10; seed++ {
		p := staticParams()
		p.Bars = 2
		p.FillsOnly = true
		p.RudimentType = RudimentRolls
		p.Seed = seedPtr(seed)

		gen, err := New(p)
		require.NoError(t, err)

		for voice := range gen.Generate().Voices {
			assert.True(t, allowed[voice], "unexpected voice %s in roll fill", voice)
		}
	}
}

func TestGenerator_FillsOnlySkipsGroove(t *testing.T) {
	p := staticParams()
	p.Bars = 4
	p.FillsOnly = true
	p.RudimentType = RudimentDiddles
	p.Seed = seedPtr(3)

	gen, err := New(p)
	require.NoError(t, err)
	pattern := gen.Generate()

	assert.NotContains(t, pattern.Voices, HihatClosed)
	assert.NotContains(t, pattern.Voices, HihatOpen)
}

func TestGenerator_PhraseCrash(t *testing.T) {
	p := staticParams()
	p.Bars = 8

	gen, err := New(p)
	require.NoError(t, err)
	pattern := gen.Generate()

	crashTimes := make(map[float64]bool)
	for _, h := range pattern.Voices[Crash] {
		crashTimes[h.Time] = true
	}
	// Top of the second 4-bar phrase, but not the very first downbeat.
	assert.True(t, crashTimes[16])
	assert.False(t, crashTimes[0])
}

func TestGenerator_UnknownKickPatternIsSilent(t *testing.T) {
	p := staticParams()
	p.Bars = 1
	p.KickPattern = KickPattern("bossa")

	gen, err := New(p)
	require.NoError(t, err)
	pattern := gen.Generate()

	assert.NotContains(t, pattern.Voices, Kick)
	assert.Contains(t, pattern.Voices, Snare)
	assert.Contains(t, pattern.Voices, HihatClosed)
}

func TestGenerator_RejectsOutOfRange(t *testing.T) {
	p := DefaultParams()
	p.Density = 1.5

	_, err := New(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "density")
}

func TestGenerator_Description(t *testing.T) {
	p := staticParams()
	p.Bars = 2

	gen, err := New(p)
	require.NoError(t, err)
	assert.Equal(t, "Generated pop_punk pattern - 2 bars", gen.Generate().Description)

	p.Section = SectionPreChorus
	gen, err = New(p)
	require.NoError(t, err)
	assert.Equal(t, "Pre-Chorus - Building tension and energy", gen.Generate().Description)
}

func TestGenerator_AltSampleRoutingWhenHumanized(t *testing.T) {
	p := DefaultParams()
	p.Bars = 32
	p.FillFrequency = 0
	p.KickPattern = KickFourFloor
	p.Seed = seedPtr(11)

	gen, err := New(p)
	require.NoError(t, err)
	pattern := gen.Generate()

	// 128 kick strokes at a 0.3 routing chance: both voices show up.
	assert.NotEmpty(t, pattern.Voices[Kick])
	assert.NotEmpty(t, pattern.Voices[KickAlt])
}
