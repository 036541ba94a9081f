// Package midi renders generated drum patterns to Standard MIDI Files.
package midi

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/groovesmith/drumgen/internal/groove"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	// TicksPerBeat is the SMF resolution used for all exports.
	TicksPerBeat = 480

	// drumChannel is channel 10 (0-indexed) -- percussion in General MIDI.
	drumChannel uint8 = 9

	// holdBeats is the fixed gate length for percussive voices.
	holdBeats = 0.1

	beatsPerBar = 4.0
)

// event is a note boundary with absolute beat timing, pre-delta-encoding.
type event struct {
	beat float64
	on   bool
	note uint8
	vel  uint8
}

// Export serializes a pattern to a single-track SMF: tempo and track name
// metadata, one NoteOn/NoteOff pair per hit on the percussion channel, and an
// end-of-track padded out to the full bar count so grid-based DAWs see the
// correct clip length. Hit lists are sorted here; the generator does not
// guarantee temporal order.
func Export(p *groove.Pattern) (*smf.SMF, error) {
	if p == nil {
		return nil, fmt.Errorf("nil pattern")
	}
	if p.Tempo <= 0 {
		return nil, fmt.Errorf("pattern tempo must be positive, got %d", p.Tempo)
	}

	// Walk the kit in fixed order so identical patterns yield identical
	// files.
	var events []event
	for _, voice := range groove.Voices() {
		hits, ok := p.Voices[voice]
		if !ok {
			continue
		}
		note, ok := voice.Note()
		if !ok {
			return nil, fmt.Errorf("voice %q has no GM note mapping", voice)
		}
		for _, h := range hits {
			events = append(events,
				event{beat: h.Time, on: true, note: note, vel: clampedVelocity(h.Velocity)},
				event{beat: h.Time + holdBeats, on: false, note: note},
			)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].beat < events[j].beat
	})

	var track smf.Track
	track.Add(0, smf.MetaTempo(float64(p.Tempo)))
	track.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("%s - %s", p.Style, p.Description)))

	// Deltas are computed between absolute tick positions, not beat deltas:
	// repeated float truncation would drift the end-of-track pad.
	current := uint32(0)
	for _, ev := range events {
		tick := beatsToTicks(ev.beat)
		if ev.on {
			track.Add(tick-current, midi.NoteOn(drumChannel, ev.note, ev.vel))
		} else {
			track.Add(tick-current, midi.NoteOff(drumChannel, ev.note))
		}
		current = tick
	}

	// Pad to the whole-bar boundary.
	total := uint32(p.Bars) * beatsPerBar * TicksPerBeat
	if total > current {
		track.Close(total - current)
	} else {
		track.Close(0)
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerBeat)
	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("adding drum track: %w", err)
	}
	return s, nil
}

// Write renders the pattern and writes SMF bytes to w.
func Write(p *groove.Pattern, w io.Writer) error {
	s, err := Export(p)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing SMF: %w", err)
	}
	return nil
}

// WriteFile renders the pattern to a .mid file at path.
func WriteFile(p *groove.Pattern, path string) error {
	s, err := Export(p)
	if err != nil {
		return err
	}
	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func beatsToTicks(beats float64) uint32 {
	if beats <= 0 {
		return 0
	}
	return uint32(math.Round(beats * TicksPerBeat))
}

func clampedVelocity(v int) uint8 {
	if v < 1 {
		return 1
	}
	if v > 127 {
		return 127
	}
	return uint8(v)
}

// Filename synthesizes the conventional export name from the raw parameters:
// style, tempo, fill/section markers, the three primary knobs, and a variation
// suffix when generating a batch.
func Filename(p groove.Params, index, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s_%dbpm", p.Style, p.Tempo)
	if p.FillsOnly {
		b.WriteString("_FILL")
	}
	if p.Section != "" {
		fmt.Fprintf(&b, "_%s", p.Section)
	}
	fmt.Fprintf(&b, "_d%dv%ds%d", int(p.Density*10), int(p.Variation*10), int(p.Syncopation*10))
	if count > 1 {
		fmt.Fprintf(&b, "_var%02d", index+1)
	}
	return sanitizeFilename(b.String()) + ".mid"
}

var filenameSanitizer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "",
	"*", "",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
	" ", "_",
)

func sanitizeFilename(name string) string {
	return filenameSanitizer.Replace(name)
}
