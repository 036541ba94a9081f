package groove

import (
	"fmt"
	"strings"
)

// Style selects a velocity profile and the snare embellishment rules.
type Style string

const (
	StylePopPunk          Style = "pop_punk"
	StyleSingerSongwriter Style = "singer_songwriter"
	StyleReggaeSka        Style = "reggae_ska"
)

// KickPattern selects the kick skeleton for groove bars.
type KickPattern string

const (
	KickPunk      KickPattern = "punk"
	KickFourFloor KickPattern = "four_floor"
	KickHalfTime  KickPattern = "half_time"
	KickDouble    KickPattern = "double"
	KickSkank     KickPattern = "skank"
	KickOneDrop   KickPattern = "one_drop"
	KickDBeat     KickPattern = "d_beat"
)

// HihatPattern selects the hi-hat/ride figure for groove bars.
type HihatPattern string

const (
	HihatEighth     HihatPattern = "eighth"
	HihatSixteenth  HihatPattern = "sixteenth"
	HihatRide       HihatPattern = "ride"
	HihatOpenClosed HihatPattern = "open_closed"
	HihatSkank      HihatPattern = "skank"
	HihatSwing      HihatPattern = "swing"
)

// Section is an optional song-structure label that rescales intensity.
type Section string

const (
	SectionIntro     Section = "intro"
	SectionVerse     Section = "verse"
	SectionPreChorus Section = "pre_chorus"
	SectionChorus    Section = "chorus"
	SectionBridge    Section = "bridge"
	SectionBreakdown Section = "breakdown"
	SectionOutro     Section = "outro"
)

// RudimentType restricts the fill library to a themed subset.
type RudimentType string

const (
	RudimentMixed   RudimentType = "mixed"
	RudimentRolls   RudimentType = "rolls"
	RudimentDiddles RudimentType = "diddles"
	RudimentFlams   RudimentType = "flams"
	RudimentDrags   RudimentType = "drags"
)

// Params is the full control surface of a single generation call.
type Params struct {
	Tempo             int          `json:"tempo"`
	Style             Style        `json:"style"`
	Bars              int          `json:"bars"`
	Density           float64      `json:"density"`
	Variation         float64      `json:"variation"`
	Syncopation       float64      `json:"syncopation"`
	FillFrequency     float64      `json:"fill_frequency"`
	KickPattern       KickPattern  `json:"kick_pattern"`
	HihatPattern      HihatPattern `json:"hihat_pattern"`
	Section           Section      `json:"section,omitempty"`
	FillsOnly         bool         `json:"fills_only"`
	RudimentType      RudimentType `json:"rudiment_type"`
	RudimentIntensity float64      `json:"rudiment_intensity"`
	Humanize          bool         `json:"humanize"`
	Seed              *int64       `json:"seed,omitempty"`
}

// DefaultParams mirrors the CLI defaults.
func DefaultParams() Params {
	return Params{
		Tempo:             140,
		Style:             StylePopPunk,
		Bars:              4,
		Density:           0.7,
		Variation:         0.5,
		Syncopation:       0.3,
		FillFrequency:     0.25,
		KickPattern:       KickPunk,
		HihatPattern:      HihatEighth,
		RudimentType:      RudimentMixed,
		RudimentIntensity: 0.5,
		Humanize:          true,
	}
}

// RangeError reports a control knob outside its allowed range. Callers are
// expected to validate before generating; the core double-checks and refuses
// to clamp silently.
type RangeError struct {
	Field string
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between 0.0 and 1.0, got %g", e.Field, e.Value)
}

// Validate rejects out-of-range control values. Unknown style, section and
// rudiment names are not errors; they degrade per the documented fallbacks.
func (p Params) Validate() error {
	if p.Tempo <= 0 {
		return fmt.Errorf("tempo must be positive, got %d", p.Tempo)
	}
	if p.Bars <= 0 {
		return fmt.Errorf("bars must be positive, got %d", p.Bars)
	}
	knobs := []struct {
		name  string
		value float64
	}{
		{"density", p.Density},
		{"variation", p.Variation},
		{"syncopation", p.Syncopation},
		{"fill_frequency", p.FillFrequency},
		{"rudiment_intensity", p.RudimentIntensity},
	}
	for _, k := range knobs {
		if k.value < 0.0 || k.value > 1.0 {
			return &RangeError{Field: k.name, Value: k.value}
		}
	}
	return nil
}

// sectionProfile rescales the intensity knobs for one song section.
type sectionProfile struct {
	densityMult   float64
	variationMult float64
	fillMult      float64
	description   string
}

var sectionProfiles = map[Section]sectionProfile{
	SectionIntro:     {0.6, 0.7, 0.8, "Building, sparse groove"},
	SectionVerse:     {0.75, 0.6, 0.5, "Groove-focused, supportive"},
	SectionPreChorus: {0.9, 0.8, 1.2, "Building tension and energy"},
	SectionChorus:    {1.1, 0.7, 0.9, "Full energy, powerful and driving"},
	SectionBridge:    {0.85, 1.3, 1.0, "Contrasting, transitional"},
	SectionBreakdown: {0.3, 0.4, 0.2, "Minimal, stripped down"},
	SectionOutro:     {0.7, 0.9, 1.5, "Ending with impact or fade"},
}

// resolveSection applies the section multipliers to the intensity knobs,
// clamped to at most 1.0. Runs exactly once per generation call, before any
// per-bar work. An unrecognized section passes the values through unchanged.
func (p Params) resolveSection() Params {
	profile, ok := sectionProfiles[p.Section]
	if !ok {
		return p
	}
	p.Density = min(1.0, p.Density*profile.densityMult)
	p.Variation = min(1.0, p.Variation*profile.variationMult)
	p.FillFrequency = min(1.0, p.FillFrequency*profile.fillMult)
	return p
}

// complexityScore maps the three primary knobs to a 1-5 rating.
func complexityScore(density, variation, syncopation float64) int {
	score := (density + variation + syncopation) / 3
	switch {
	case score < 0.3:
		return 1
	case score < 0.5:
		return 2
	case score < 0.7:
		return 3
	case score < 0.85:
		return 4
	default:
		return 5
	}
}

// sectionTitle renders a section name for descriptions: "pre_chorus" becomes
// "Pre-Chorus".
func sectionTitle(s Section) string {
	parts := strings.Split(string(s), "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "-")
}
