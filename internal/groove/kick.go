package groove

// kickFunc emits the kick strokes for one groove bar.
type kickFunc func(g *Generator, sc *score, offset float64, bar int)

// Closed dispatch table: unsupported pattern names contribute no hits rather
// than failing, matching the documented degradation policy.
var kickPatterns = map[KickPattern]kickFunc{
	KickPunk:      kickPunk,
	KickFourFloor: kickFourFloor,
	KickHalfTime:  kickHalfTime,
	KickDouble:    kickDouble,
	KickSkank:     kickSkank,
	KickOneDrop:   kickOneDrop,
	KickDBeat:     kickDBeat,
}

func (g *Generator) addKick(sc *score, offset float64, bar int) {
	if play, ok := kickPatterns[g.params.KickPattern]; ok {
		play(g, sc, offset, bar)
	}
}

// Classic punk: beats 1 and 3, sometimes with syncopation.
func kickPunk(g *Generator, sc *score, offset float64, bar int) {
	g.strike(sc, Kick, offset, bar%crashAccentEvery == 0, false, 0)
	g.strike(sc, Kick, offset+2, false, false, 0)

	if g.chance(g.params.Syncopation) {
		g.strike(sc, Kick, offset+1.5, false, false, 0)
	}
	if g.chance(g.params.Syncopation * 0.5) {
		g.strike(sc, Kick, offset+3.5, false, false, 0)
	}
}

// Four on the floor, beat 1 accented.
func kickFourFloor(g *Generator, sc *score, offset float64, _ int) {
	for beat := 0; beat < 4; beat++ {
		g.strike(sc, Kick, offset+float64(beat), beat == 0, false, 0)
	}
}

// Half-time feel: heavy one, late second hit.
func kickHalfTime(g *Generator, sc *score, offset float64, _ int) {
	g.strike(sc, Kick, offset, true, false, 0)

	second := offset + 3
	if g.chance(g.params.Variation) {
		second = offset + 2.5
	}
	g.strike(sc, Kick, second, false, false, 0)
}

// Double bass punk: paired eighths with occasional extra sixteenth.
func kickDouble(g *Generator, sc *score, offset float64, _ int) {
	for _, beat := range []float64{0, 0.5, 2, 2.5} {
		g.strike(sc, Kick, offset+beat, beat == 0, false, 0)
		if g.chance(g.params.Variation * 0.3) {
			g.strike(sc, Kick, offset+beat+0.25, false, false, 0)
		}
	}
}

// Ska/reggae skank: emphasis on 1 with groove-feel extras.
func kickSkank(g *Generator, sc *score, offset float64, _ int) {
	g.strike(sc, Kick, offset, true, false, 0)

	if g.chance(g.params.Variation * 0.6) {
		g.strike(sc, Kick, offset+2, false, false, 0)
	}
	if g.chance(g.params.Syncopation * 0.7) {
		choices := []float64{2.5, 3.5}
		g.strike(sc, Kick, offset+choices[g.rng.Intn(len(choices))], false, false, 0)
	}
}

// Reggae one-drop: no kick on 1, heavy on 3.
func kickOneDrop(g *Generator, sc *score, offset float64, _ int) {
	g.strike(sc, Kick, offset+2, true, false, 0)

	if g.chance(g.params.Variation * 0.5) {
		g.strike(sc, Kick, offset+3.5, false, false, 0)
	}
}

// Hardcore d-beat: accented 1 and 3 plus syncopated intensity.
func kickDBeat(g *Generator, sc *score, offset float64, _ int) {
	g.strike(sc, Kick, offset, true, false, 0)
	g.strike(sc, Kick, offset+2, true, false, 0)

	if g.chance(g.params.Syncopation) {
		g.strike(sc, Kick, offset+1.5, false, false, 0)
	}
	if g.chance(g.params.Syncopation) {
		g.strike(sc, Kick, offset+3.5, false, false, 0)
	}
}
