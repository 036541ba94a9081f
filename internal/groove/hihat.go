package groove

// hihatFunc emits the hi-hat (or ride) figure for one groove bar.
type hihatFunc func(g *Generator, sc *score, offset float64)

var hihatPatterns = map[HihatPattern]hihatFunc{
	HihatEighth:     hihatEighth,
	HihatSixteenth:  hihatSixteenth,
	HihatRide:       hihatRide,
	HihatOpenClosed: hihatOpenClosed,
	HihatSkank:      hihatSkank,
	HihatSwing:      hihatSwing,
}

func (g *Generator) addHihats(sc *score, offset float64) {
	if play, ok := hihatPatterns[g.params.HihatPattern]; ok {
		play(g, sc, offset)
	}
}

// Straight eighth notes, accents on the downbeats at indices 0 and 4.
func hihatEighth(g *Generator, sc *score, offset float64) {
	for i := 0; i < 8; i++ {
		at := offset + float64(i)*0.5
		if !g.chance(g.params.Density) {
			continue
		}
		accent := i%4 == 0
		if g.chance(g.params.Variation * 0.2) {
			g.strike(sc, HihatOpen, at, accent, false, 0)
		} else {
			g.strike(sc, HihatClosed, at, accent, false, 0)
		}
	}
}

// Fast punk sixteenths, closed only, accent every quarter.
func hihatSixteenth(g *Generator, sc *score, offset float64) {
	for i := 0; i < 16; i++ {
		at := offset + float64(i)*0.25
		if g.chance(g.params.Density) {
			g.strike(sc, HihatClosed, at, i%4 == 0, false, 0)
		}
	}
}

// Ride cymbal eighths, slightly thinned, accent on the on-beats.
func hihatRide(g *Generator, sc *score, offset float64) {
	for i := 0; i < 8; i++ {
		at := offset + float64(i)*0.5
		if g.chance(g.params.Density * 0.9) {
			g.strike(sc, Ride, at, i%2 == 0, false, 0)
		}
	}
}

// Alternating closed/open eighths: the closed downbeats always land.
func hihatOpenClosed(g *Generator, sc *score, offset float64) {
	for i := 0; i < 8; i++ {
		at := offset + float64(i)*0.5
		if i%2 == 0 {
			g.strike(sc, HihatClosed, at, true, false, 0)
		} else if g.chance(g.params.Density) {
			g.strike(sc, HihatOpen, at, false, false, 0)
		}
	}
}

// Ska/reggae skank: choppy offbeats only, always accented.
func hihatSkank(g *Generator, sc *score, offset float64) {
	for i := 1; i < 8; i += 2 {
		at := offset + float64(i)*0.5
		if !g.chance(g.params.Density) {
			continue
		}
		if g.chance(g.params.Variation * 0.25) {
			g.strike(sc, HihatOpen, at, true, false, 0)
		} else {
			g.strike(sc, HihatClosed, at, true, false, 0)
		}
	}
}

// Swung eighths: every downbeat plus the third triplet of the beat.
func hihatSwing(g *Generator, sc *score, offset float64) {
	for beat := 0; beat < 4; beat++ {
		at := offset + float64(beat)
		g.strike(sc, HihatClosed, at, true, false, 0)

		if !g.chance(g.params.Density) {
			continue
		}
		swung := at + 0.667
		if g.chance(g.params.Variation * 0.15) {
			g.strike(sc, HihatOpen, swung, false, false, 0)
		} else {
			g.strike(sc, HihatClosed, swung, false, false, 0)
		}
	}
}
