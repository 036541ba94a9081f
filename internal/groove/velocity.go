package groove

import (
	"math"
	"strings"
)

// velocityProfile holds the base/variation/accent triple for one drum class.
type velocityProfile struct {
	base      int
	variation int
	accent    int
}

// Velocity profiles per style. Lookups for an unknown style fall back to the
// pop_punk table; a missing drum class falls back to fallbackProfile.
var velocityProfiles = map[Style]map[string]velocityProfile{
	StylePopPunk: {
		"kick":        {base: 110, variation: 10, accent: 15},
		"snare":       {base: 105, variation: 12, accent: 15},
		"hihat":       {base: 75, variation: 15, accent: 20},
		"ghost_snare": {base: 45, variation: 10, accent: 0},
	},
	StyleSingerSongwriter: {
		"kick":        {base: 85, variation: 20, accent: 25},
		"snare":       {base: 80, variation: 25, accent: 30},
		"hihat":       {base: 60, variation: 20, accent: 25},
		"ghost_snare": {base: 35, variation: 12, accent: 0},
	},
	StyleReggaeSka: {
		"kick":        {base: 95, variation: 18, accent: 20},
		"snare":       {base: 90, variation: 22, accent: 25},
		"rim":         {base: 85, variation: 20, accent: 22},
		"hihat":       {base: 70, variation: 18, accent: 28},
		"ghost_snare": {base: 40, variation: 15, accent: 0},
	},
}

var fallbackProfile = velocityProfile{base: 90, variation: 15, accent: 20}

// Static velocities used when humanization is off.
const (
	staticGhost  = 40
	staticAccent = 110
	staticNormal = 100
)

const fatigueOnsetBars = 4

// profileKey buckets a voice into a velocity profile class. Toms and cymbals
// fall through to the snare profile.
func profileKey(v Voice, ghost bool) string {
	name := string(v)
	switch {
	case strings.Contains(name, "kick"):
		return "kick"
	case strings.Contains(name, "snare"), strings.Contains(name, "rim"):
		if ghost {
			return "ghost_snare"
		}
		return "snare"
	case strings.Contains(name, "hihat"), strings.Contains(name, "ride"):
		return "hihat"
	default:
		return "snare"
	}
}

// velocity computes the humanized velocity for one hit. The additive terms
// apply in a fixed order before the final clamp: accent, Gaussian variation,
// downbeat emphasis, fill crescendo, fatigue decay.
func (g *Generator) velocity(v Voice, at float64, accent, ghost bool, fillProgress float64) int {
	if !g.humanize {
		switch {
		case ghost:
			return staticGhost
		case accent:
			return staticAccent
		default:
			return staticNormal
		}
	}

	profiles, ok := velocityProfiles[g.params.Style]
	if !ok {
		profiles = velocityProfiles[StylePopPunk]
	}
	profile, ok := profiles[profileKey(v, ghost)]
	if !ok {
		profile = fallbackProfile
	}

	velocity := float64(profile.base)
	if accent {
		velocity += float64(profile.accent)
	}

	// Natural inconsistency: Gaussian spread around the base.
	velocity += g.rng.NormFloat64() * (float64(profile.variation) / 2.5)

	// Subtle emphasis on beat 1 of each bar.
	if !ghost && beatPosition(at) == 0 {
		velocity += float64(3 + g.rng.Intn(6))
	}

	// Crescendo toward the end of a fill.
	if fillProgress > 0 {
		velocity += fillProgress * 20
	}

	// Drummer fatigue over long patterns.
	bar := int(at / beatsPerBar)
	if bar > fatigueOnsetBars {
		velocity -= min(float64(bar-fatigueOnsetBars)*0.5, 8)
	}

	return clampVelocity(int(velocity))
}

func beatPosition(at float64) float64 {
	return math.Mod(at, beatsPerBar)
}

func clampVelocity(v int) int {
	if v < 1 {
		return 1
	}
	if v > 127 {
		return 127
	}
	return v
}
