package groove

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	beatsPerBar = 4.0

	// Probability that a kick or snare stroke lands on the alternate sample
	// instead of the primary one. Only active while humanizing.
	altSampleChance = 0.3

	crashAccentEvery = 4
)

// Generator produces drum patterns from a fixed parameter set. It owns its
// random stream: two generators with the same params and seed produce
// identical patterns regardless of what else runs in the process. A Generator
// is not safe for concurrent use.
type Generator struct {
	params   Params
	humanize bool
	rng      *rand.Rand
}

// New validates the parameters and prepares a generator. The section
// multipliers are resolved here, exactly once, before any per-bar work.
func New(p Params) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	seed := time.Now().UnixNano()
	if p.Seed != nil {
		seed = *p.Seed
	}
	return &Generator{
		params:   p.resolveSection(),
		humanize: p.Humanize,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Generate composes the full pattern: per bar either a groove (kick, snare
// and hi-hat generators all run) or a fill drawn from the rudiment catalog.
// Fill bars are only reachable on the last bar unless FillsOnly forces one
// for every bar.
func (g *Generator) Generate() *Pattern {
	sc := newScore()
	p := g.params

	for bar := 0; bar < p.Bars; bar++ {
		offset := float64(bar) * beatsPerBar

		fillBar := p.FillsOnly
		if !fillBar {
			fillBar = g.rng.Float64() < p.FillFrequency && bar == p.Bars-1
		}

		if fillBar {
			g.addFill(sc, offset)
			continue
		}

		g.addKick(sc, offset, bar)
		g.addSnare(sc, offset)
		g.addHihats(sc, offset)

		// Occasional accent cymbal at the top of a phrase.
		if bar%crashAccentEvery == 0 && bar > 0 {
			g.strike(sc, Crash, offset, true, false, 0)
		}
	}

	return &Pattern{
		Tempo:       p.Tempo,
		Style:       p.Style,
		Bars:        p.Bars,
		Section:     p.Section,
		Complexity:  complexityScore(p.Density, p.Variation, p.Syncopation),
		Humanized:   g.humanize,
		Description: g.describe(),
		Voices:      sc.pattern(),
	}
}

// strike computes the velocity for one stroke and appends it. Kick and snare
// strokes are probabilistically routed to their alternate sample while
// humanizing, independently per hit.
func (g *Generator) strike(sc *score, v Voice, at float64, accent, ghost bool, fillProgress float64) {
	velocity := g.velocity(v, at, accent, ghost, fillProgress)

	target := v
	if alt, ok := alternates[v]; ok && g.humanize && g.rng.Float64() < altSampleChance {
		target = alt
	}
	sc.add(target, Hit{Time: at, Velocity: velocity})
}

// grace appends a quiet ornament strictly before a main hit. The note is
// dropped when its time would fall before floor, so ornaments near the very
// start of the pattern never go negative.
func (g *Generator) grace(sc *score, v Voice, at, floor float64) {
	if at < floor {
		return
	}
	sc.add(v, Hit{Time: at, Velocity: g.velocity(v, at, false, true, 0)})
}

// chance draws one Bernoulli trial against p.
func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func (g *Generator) describe() string {
	p := g.params
	if p.Section == "" {
		return fmt.Sprintf("Generated %s pattern - %d bars", p.Style, p.Bars)
	}
	desc := string(p.Section)
	if profile, ok := sectionProfiles[p.Section]; ok {
		desc = profile.description
	}
	return fmt.Sprintf("%s - %s", sectionTitle(p.Section), desc)
}
