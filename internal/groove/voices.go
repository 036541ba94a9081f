package groove

// Voice identifies a single drum voice in the kit.
type Voice string

const (
	Kick        Voice = "kick"
	KickAlt     Voice = "kick_alt"
	Snare       Voice = "snare"
	SnareAlt    Voice = "snare_alt"
	Rim         Voice = "rim"
	HihatClosed Voice = "hihat_closed"
	HihatOpen   Voice = "hihat_open"
	HihatPedal  Voice = "hihat_pedal"
	Ride        Voice = "ride"
	Crash       Voice = "crash"
	TomHigh     Voice = "tom_high"
	TomMid      Voice = "tom_mid"
	TomLow      Voice = "tom_low"
	TomFloor    Voice = "tom_floor"
)

// General MIDI drum map. Read-only after init; never mutated.
var gmNotes = map[Voice]uint8{
	Kick:        36,
	KickAlt:     35,
	Snare:       38,
	SnareAlt:    40,
	Rim:         37,
	HihatClosed: 42,
	HihatOpen:   46,
	HihatPedal:  44,
	Ride:        51,
	Crash:       49,
	TomHigh:     50,
	TomMid:      47,
	TomLow:      45,
	TomFloor:    41,
}

// alternates pairs the voices that carry a second sample. Hits are routed to
// the alternate probabilistically to avoid mechanical repetition.
var alternates = map[Voice]Voice{
	Kick:  KickAlt,
	Snare: SnareAlt,
}

// voiceOrder is the fixed iteration order used everywhere a stable walk over
// the kit is required (exporters, tests). Go map iteration is randomized, so
// deterministic output depends on this list.
var voiceOrder = []Voice{
	Kick, KickAlt, Snare, SnareAlt, Rim,
	HihatClosed, HihatOpen, HihatPedal,
	Ride, Crash,
	TomHigh, TomMid, TomLow, TomFloor,
}

// Note returns the General MIDI note number for the voice. The second return
// is false for voices outside the kit.
func (v Voice) Note() (uint8, bool) {
	n, ok := gmNotes[v]
	return n, ok
}

// Voices returns the full kit in fixed order.
func Voices() []Voice {
	out := make([]Voice, len(voiceOrder))
	copy(out, voiceOrder)
	return out
}
