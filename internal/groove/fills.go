package groove

// The fill library: rudiment-inspired one-bar flourishes. Every algorithm
// crescendos toward the bar boundary and, by convention rather than contract,
// lands an accented crash (often with kick) on the downbeat that follows.

// fillFunc emits one fill across the bar starting at offset.
type fillFunc func(g *Generator, sc *score, offset float64)

type fill struct {
	name string
	play fillFunc
}

// fillCatalog is ordered; selection indexes into it so the draw sequence is
// reproducible under a fixed seed.
var fillCatalog = []fill{
	{"tom_descent", fillTomDescent},
	{"tom_ascent", fillTomAscent},
	{"snare_roll", fillSnareRoll},
	{"buzz_roll", fillBuzzRoll},
	{"five_stroke_roll", fillFiveStrokeRoll},
	{"seven_stroke_roll", fillSevenStrokeRoll},
	{"paradiddle", fillParadiddle},
	{"double_paradiddle", fillDoubleParadiddle},
	{"paradiddle_diddle", fillParadiddleDiddle},
	{"triple_paradiddle", fillTripleParadiddle},
	{"flam_accent", fillFlamAccent},
	{"flam_tap", fillFlamTap},
	{"swiss_triplet", fillSwissTriplet},
	{"drag_tap", fillDragTap},
	{"single_drag_tap", fillSingleDragTap},
	{"ruff", fillRuff},
	{"linear", fillLinear},
	{"crash_build", fillCrashBuild},
}

// Thematic subsets per rudiment type. Mixed (and any unknown type) draws from
// the whole catalog.
var rudimentSets = map[RudimentType][]string{
	RudimentRolls:   {"snare_roll", "buzz_roll", "five_stroke_roll", "seven_stroke_roll"},
	RudimentDiddles: {"paradiddle", "double_paradiddle", "paradiddle_diddle", "triple_paradiddle"},
	RudimentFlams:   {"flam_accent", "flam_tap", "swiss_triplet"},
	RudimentDrags:   {"drag_tap", "single_drag_tap", "ruff"},
}

// Grace-note floors. These are deliberately independent per rudiment family;
// they were tuned separately and are not one global threshold.
const (
	rollGraceFloor = 0.1
	buzzGraceFloor = 0.05
	flamGraceFloor = 0.1
	dragGraceFloor = 0.05
)

// Ghost-ornament thresholds on rudiment intensity.
const (
	rollGhostThreshold = 0.6
	buzzGhostThreshold = 0.5
)

// fillsFor resolves the selectable subset for a rudiment type.
func fillsFor(t RudimentType) []fill {
	names, ok := rudimentSets[t]
	if !ok {
		return fillCatalog
	}
	subset := make([]fill, 0, len(names))
	for _, f := range fillCatalog {
		for _, name := range names {
			if f.name == name {
				subset = append(subset, f)
				break
			}
		}
	}
	return subset
}

// intensityFactor scales subdivision counts and crescendo reach: 0.5 at zero
// intensity, 1.0 at full.
func (g *Generator) intensityFactor() float64 {
	return 0.5 + g.params.RudimentIntensity*0.5
}

// scaledCount floors base*factor with a per-algorithm minimum.
func (g *Generator) scaledCount(base, minimum int) int {
	n := int(float64(base) * g.intensityFactor())
	if n < minimum {
		return minimum
	}
	return n
}

// addFill picks one algorithm uniformly from the selected subset and plays it.
func (g *Generator) addFill(sc *score, offset float64) {
	subset := fillsFor(g.params.RudimentType)
	subset[g.rng.Intn(len(subset))].play(g, sc, offset)
}

// crashEnd lands the conventional accented crash (and usually kick) on the
// downbeat after the fill.
func (g *Generator) crashEnd(sc *score, barEnd float64, withKick bool) {
	g.strike(sc, Crash, barEnd, true, false, 0)
	if withKick {
		g.strike(sc, Kick, barEnd, true, false, 0)
	}
}

var tomsDescending = []Voice{TomHigh, TomMid, TomLow, TomFloor}
var tomsAscending = []Voice{TomFloor, TomLow, TomMid, TomHigh}

// tomRun spreads an even subdivision across the four toms. Integer division
// drops remainder hits; the crescendo denominator keeps the nominal count so
// truncated runs never reach full crescendo.
func (g *Generator) tomRun(sc *score, offset float64, toms []Voice) {
	base := 4
	if g.params.Density > 0.6 {
		base = 8
	}
	subdivisions := g.scaledCount(base, 4)
	perTom := subdivisions / len(toms)
	increment := beatsPerBar / float64(subdivisions)
	factor := g.intensityFactor()

	hit := 0
	for i, tom := range toms {
		for j := 0; j < perTom; j++ {
			at := offset + float64(i*perTom+j)*increment
			progress := float64(hit) / float64(subdivisions) * factor
			g.strike(sc, tom, at, false, false, progress)
			hit++
		}
	}
	g.crashEnd(sc, offset+beatsPerBar, true)
}

func fillTomDescent(g *Generator, sc *score, offset float64) {
	g.tomRun(sc, offset, tomsDescending)
}

func fillTomAscent(g *Generator, sc *score, offset float64) {
	g.tomRun(sc, offset, tomsAscending)
}

// Fast single-stroke snare roll; above the intensity threshold, scattered
// ghost graces fatten random strokes.
func fillSnareRoll(g *Generator, sc *score, offset float64) {
	base := 8
	if g.params.Density > 0.7 {
		base = 16
	}
	n := g.scaledCount(base, 8)
	factor := g.intensityFactor()

	for i := 0; i < n; i++ {
		at := offset + float64(i)/float64(n)*beatsPerBar
		progress := float64(i) / float64(n) * factor
		g.strike(sc, Snare, at, false, false, progress)
		if g.params.RudimentIntensity > rollGhostThreshold && g.chance(0.25) {
			g.grace(sc, Snare, at-0.1, rollGraceFloor)
		}
	}
	g.crashEnd(sc, offset+beatsPerBar, false)
}

// Buzz roll: a denser grid where each stroke carries a pair of buzzing
// ghost graces once the intensity allows.
func fillBuzzRoll(g *Generator, sc *score, offset float64) {
	n := g.scaledCount(24, 12)
	factor := g.intensityFactor()
	step := beatsPerBar / float64(n)

	for i := 0; i < n; i++ {
		at := offset + float64(i)*step
		progress := float64(i) / float64(n) * factor
		g.strike(sc, Snare, at, false, false, progress)
		if g.params.RudimentIntensity > buzzGhostThreshold {
			g.grace(sc, Snare, at-0.06, buzzGraceFloor)
			g.grace(sc, Snare, at-0.03, buzzGraceFloor)
		}
	}
	g.crashEnd(sc, offset+beatsPerBar, false)
}

// strokeRoll plays diddled tap groups each resolving onto an accent.
func (g *Generator) strokeRoll(sc *score, offset float64, groups []float64, taps int) {
	total := len(groups) * (taps + 1)
	factor := g.intensityFactor()
	hit := 0

	for _, start := range groups {
		for k := 0; k < taps; k++ {
			at := offset + start + float64(k)*0.125
			progress := float64(hit) / float64(total) * factor
			g.strike(sc, Snare, at, false, false, progress)
			hit++
		}
		resolve := offset + start + float64(taps)*0.125
		progress := float64(hit) / float64(total) * factor
		g.strike(sc, Snare, resolve, true, false, progress)
		hit++
	}
	g.crashEnd(sc, offset+beatsPerBar, true)
}

func fillFiveStrokeRoll(g *Generator, sc *score, offset float64) {
	g.strokeRoll(sc, offset, []float64{2, 3}, 4)
}

func fillSevenStrokeRoll(g *Generator, sc *score, offset float64) {
	g.strokeRoll(sc, offset, []float64{2.5}, 6)
}

// sticking walks a fixed rudiment orchestration across the bar with
// intensity-scaled note count.
func (g *Generator) sticking(sc *score, offset float64, voices []Voice, base, minimum int, withKick bool) {
	n := g.scaledCount(base, minimum)
	step := beatsPerBar / float64(n)
	factor := g.intensityFactor()

	for i := 0; i < n; i++ {
		at := offset + float64(i)*step
		progress := float64(i) / float64(n) * factor
		g.strike(sc, voices[i%len(voices)], at, false, false, progress)
	}
	g.crashEnd(sc, offset+beatsPerBar, withKick)
}

func fillParadiddle(g *Generator, sc *score, offset float64) {
	// RLRR LRLL mapped onto snare and toms.
	voices := []Voice{Snare, TomHigh, Snare, Snare, TomMid, Snare, TomLow, TomLow}
	g.sticking(sc, offset, voices, 8, 4, false)
}

func fillDoubleParadiddle(g *Generator, sc *score, offset float64) {
	// RLRLRR LRLRLL.
	voices := []Voice{
		Snare, TomHigh, Snare, TomMid, Snare, Snare,
		TomHigh, Snare, TomMid, Snare, TomHigh, TomHigh,
	}
	g.sticking(sc, offset, voices, 12, 6, false)
}

func fillParadiddleDiddle(g *Generator, sc *score, offset float64) {
	// RLRRLL.
	voices := []Voice{Snare, TomHigh, Snare, Snare, TomLow, TomLow}
	g.sticking(sc, offset, voices, 12, 6, false)
}

func fillTripleParadiddle(g *Generator, sc *score, offset float64) {
	// RLRLRLRR.
	voices := []Voice{Snare, TomHigh, Snare, TomMid, Snare, TomLow, Snare, Snare}
	g.sticking(sc, offset, voices, 16, 8, false)
}

// tripletGroups plays one three-note group per beat, flamming the first note
// of each group.
func (g *Generator) tripletGroups(sc *score, offset float64, voices []Voice) {
	total := 4 * len(voices)
	factor := g.intensityFactor()
	hit := 0

	for beat := 0; beat < 4; beat++ {
		for k, v := range voices {
			at := offset + float64(beat) + float64(k)*0.333
			progress := float64(hit) / float64(total) * factor
			accent := k == 0
			g.strike(sc, v, at, accent, false, progress)
			if k == 0 {
				g.grace(sc, v, at-0.08, flamGraceFloor)
			}
			hit++
		}
	}
	g.crashEnd(sc, offset+beatsPerBar, false)
}

func fillFlamAccent(g *Generator, sc *score, offset float64) {
	g.tripletGroups(sc, offset, []Voice{Snare, TomHigh, TomMid})
}

func fillSwissTriplet(g *Generator, sc *score, offset float64) {
	g.tripletGroups(sc, offset, []Voice{Snare, TomMid, TomLow})
}

// Flam tap: flammed double strokes straight down the bar.
func fillFlamTap(g *Generator, sc *score, offset float64) {
	n := 8
	factor := g.intensityFactor()

	for i := 0; i < n; i++ {
		at := offset + float64(i)*0.5
		progress := float64(i) / float64(n) * factor
		flammed := i%2 == 0
		g.strike(sc, Snare, at, flammed, false, progress)
		if flammed {
			g.grace(sc, Snare, at-0.05, flamGraceFloor)
		}
	}
	g.crashEnd(sc, offset+beatsPerBar, false)
}

// Drag tap: dragged strokes (two graces) alternating with plain taps.
func fillDragTap(g *Generator, sc *score, offset float64) {
	n := 8
	factor := g.intensityFactor()

	for i := 0; i < n; i++ {
		at := offset + float64(i)*0.5
		progress := float64(i) / float64(n) * factor
		dragged := i%2 == 0
		g.strike(sc, Snare, at, dragged, false, progress)
		if dragged {
			g.grace(sc, Snare, at-0.12, dragGraceFloor)
			g.grace(sc, Snare, at-0.06, dragGraceFloor)
		}
	}
	g.crashEnd(sc, offset+beatsPerBar, false)
}

// Single drag tap over the back half of the bar, drags on the snare strokes.
func fillSingleDragTap(g *Generator, sc *score, offset float64) {
	voices := []Voice{Snare, TomMid, Snare, TomMid}
	factor := g.intensityFactor()

	for i, v := range voices {
		at := offset + 2 + float64(i)*0.5
		progress := float64(i) / float64(len(voices)) * factor
		g.strike(sc, v, at, v != Snare, false, progress)
		if v == Snare {
			g.grace(sc, Snare, at-0.1, dragGraceFloor)
			g.grace(sc, Snare, at-0.05, dragGraceFloor)
		}
	}
	g.crashEnd(sc, offset+beatsPerBar, false)
}

// Ruff: three graces crowd in front of each accented main stroke.
func fillRuff(g *Generator, sc *score, offset float64) {
	mains := []float64{1, 2, 3}
	factor := g.intensityFactor()

	for i, beat := range mains {
		at := offset + beat
		progress := float64(i) / float64(len(mains)) * factor
		g.strike(sc, Snare, at, true, false, progress)
		g.grace(sc, Snare, at-0.15, dragGraceFloor)
		g.grace(sc, Snare, at-0.10, dragGraceFloor)
		g.grace(sc, Snare, at-0.05, dragGraceFloor)
	}
	g.crashEnd(sc, offset+beatsPerBar, false)
}

// Linear fill: round-robin through the kit, never two limbs at once.
func fillLinear(g *Generator, sc *score, offset float64) {
	voices := []Voice{Kick, Snare, HihatClosed, TomHigh, Snare, Kick, TomLow, HihatClosed}
	n := g.scaledCount(16, 8)
	step := beatsPerBar / float64(n)
	factor := g.intensityFactor()

	for i := 0; i < n; i++ {
		at := offset + float64(i)*step
		progress := float64(i) / float64(n) * factor
		g.strike(sc, voices[i%len(voices)], at, false, false, progress)
	}
	g.crashEnd(sc, offset+beatsPerBar, false)
}

// Crash build: snare ramp through the back half of the bar into crash+kick.
func fillCrashBuild(g *Generator, sc *score, offset float64) {
	n := g.scaledCount(8, 4)
	step := 2.0 / float64(n)
	factor := g.intensityFactor()

	for i := 0; i < n; i++ {
		at := offset + 2 + float64(i)*step
		progress := float64(i) / float64(n) * factor
		g.strike(sc, Snare, at, false, false, progress)
	}
	g.crashEnd(sc, offset+beatsPerBar, true)
}
