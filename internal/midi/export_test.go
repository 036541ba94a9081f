package midi

import (
	"bytes"
	"testing"

	"github.com/groovesmith/drumgen/internal/groove"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func testPattern() *groove.Pattern {
	return &groove.Pattern{
		Tempo:       120,
		Style:       groove.StylePopPunk,
		Bars:        1,
		Complexity:  2,
		Description: "Generated pop_punk pattern - 1 bars",
		Voices: map[groove.Voice][]groove.Hit{
			groove.Kick: {
				{Time: 0, Velocity: 110},
				{Time: 2, Velocity: 100},
			},
			groove.Snare: {
				{Time: 1, Velocity: 110},
				{Time: 3, Velocity: 110},
			},
		},
	}
}

func TestExport_Structure(t *testing.T) {
	s, err := Export(testPattern())
	require.NoError(t, err)

	assert.Equal(t, smf.MetricTicks(TicksPerBeat), s.TimeFormat)
	require.Len(t, s.Tracks, 1)
}

func TestExport_EventsOnDrumChannel(t *testing.T) {
	s, err := Export(testPattern())
	require.NoError(t, err)

	noteOns := 0
	for _, ev := range s.Tracks[0] {
		var ch, key, vel uint8
		if ev.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
			assert.Equal(t, uint8(9), ch)
			noteOns++
		}
	}
	assert.Equal(t, 4, noteOns)
}

func TestExport_AbsoluteTimesMatchHits(t *testing.T) {
	s, err := Export(testPattern())
	require.NoError(t, err)

	// Reconstruct absolute tick times per note-on.
	byNote := make(map[uint8][]uint32)
	var now uint32
	for _, ev := range s.Tracks[0] {
		now += ev.Delta
		var ch, key, vel uint8
		if ev.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
			byNote[key] = append(byNote[key], now)
		}
	}

	assert.Equal(t, []uint32{0, 2 * TicksPerBeat}, byNote[36])
	assert.Equal(t, []uint32{1 * TicksPerBeat, 3 * TicksPerBeat}, byNote[38])
}

// The track pads end-of-track to the whole bar so DAWs see the right clip
// length, even when the last hit lands early.
func TestExport_PadsToBarBoundary(t *testing.T) {
	p := testPattern()
	p.Bars = 2

	s, err := Export(p)
	require.NoError(t, err)

	var total uint32
	for _, ev := range s.Tracks[0] {
		total += ev.Delta
	}
	assert.Equal(t, uint32(2*4*TicksPerBeat), total)
}

// Grace notes are appended out of order by the generator; the exporter must
// produce non-decreasing deltas anyway.
func TestExport_SortsUnorderedHits(t *testing.T) {
	p := testPattern()
	p.Voices = map[groove.Voice][]groove.Hit{
		groove.Snare: {
			{Time: 2, Velocity: 100},
			{Time: 1.88, Velocity: 40},
			{Time: 1.94, Velocity: 40},
		},
	}

	s, err := Export(p)
	require.NoError(t, err)

	var now uint32
	var times []uint32
	for _, ev := range s.Tracks[0] {
		now += ev.Delta
		var ch, key, vel uint8
		if ev.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
			times = append(times, now)
		}
	}
	require.Len(t, times, 3)
	assert.True(t, times[0] <= times[1] && times[1] <= times[2])
}

func TestExport_Rejects(t *testing.T) {
	_, err := Export(nil)
	assert.Error(t, err)

	p := testPattern()
	p.Tempo = 0
	_, err = Export(p)
	assert.Error(t, err)
}

func TestWrite_ProducesSMFHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(testPattern(), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("MThd")))
}

func TestBeatsToTicks(t *testing.T) {
	assert.Equal(t, uint32(0), beatsToTicks(-1))
	assert.Equal(t, uint32(0), beatsToTicks(0))
	assert.Equal(t, uint32(480), beatsToTicks(1))
	assert.Equal(t, uint32(240), beatsToTicks(0.5))
}

func TestClampedVelocity(t *testing.T) {
	assert.Equal(t, uint8(1), clampedVelocity(0))
	assert.Equal(t, uint8(100), clampedVelocity(100))
	assert.Equal(t, uint8(127), clampedVelocity(200))
}

func TestFilename(t *testing.T) {
	p := groove.DefaultParams()
	p.Tempo = 165
	p.Density = 0.7
	p.Variation = 0.5
	p.Syncopation = 0.3

	assert.Equal(t, "pop_punk_165bpm_d7v5s3.mid", Filename(p, 0, 1))

	p.Section = groove.SectionChorus
	assert.Equal(t, "pop_punk_165bpm_chorus_d7v5s3.mid", Filename(p, 0, 1))

	p.Section = ""
	p.FillsOnly = true
	assert.Equal(t, "pop_punk_165bpm_FILL_d7v5s3.mid", Filename(p, 0, 1))

	p.FillsOnly = false
	assert.Equal(t, "pop_punk_165bpm_d7v5s3_var03.mid", Filename(p, 2, 5))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a-b_c", sanitizeFilename(`a/b c`))
	assert.Equal(t, "test", sanitizeFilename(`te*st?`))
}
