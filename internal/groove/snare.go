package groove

// addSnare lays the backbeat and the per-style embellishments for one groove
// bar. Beats 2 and 4 are unconditional and always accented, in every style --
// the backbeat is sacred.
func (g *Generator) addSnare(sc *score, offset float64) {
	p := g.params

	switch p.Style {
	case StyleReggaeSka:
		// Rimshots (cross-stick) instead of full snare hits most of the
		// time, full accented snare otherwise.
		if g.chance(0.6) {
			g.strike(sc, Rim, offset+1, true, false, 0)
		} else {
			g.strike(sc, Snare, offset+1, true, false, 0)
		}
		if g.chance(0.7) {
			g.strike(sc, Rim, offset+3, true, false, 0)
		} else {
			g.strike(sc, Snare, offset+3, true, false, 0)
		}
		if g.chance(p.Variation * 0.3) {
			g.strike(sc, Snare, offset+2.5, false, true, 0)
		}
		return

	default:
		g.strike(sc, Snare, offset+1, true, false, 0)
		g.strike(sc, Snare, offset+3, true, false, 0)
	}

	switch p.Style {
	case StylePopPunk:
		// More aggressive: occasional ghost plus a pushed extra hit.
		if g.chance(p.Variation * 0.4) {
			g.strike(sc, Snare, offset+1.75, false, true, 0)
		}
		if g.chance(p.Syncopation) {
			g.strike(sc, Snare, offset+3.75, false, false, 0)
		}
	case StyleSingerSongwriter:
		if g.chance(p.Variation * 0.3) {
			g.strike(sc, Rim, offset+2, false, false, 0)
		}
	}
}
