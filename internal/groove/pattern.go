package groove

// Hit is a single drum stroke: a beat offset from the start of the pattern
// and a MIDI velocity in [1,127]. Hits are immutable once appended.
type Hit struct {
	Time     float64 `json:"time"`
	Velocity int     `json:"velocity"`
}

// Pattern is the result of one generation call. Hits within a voice appear in
// the order they were generated, which is NOT guaranteed to be monotonic in
// time: grace notes land immediately before a main hit that was conceived
// first. Consumers must sort by time before serializing.
type Pattern struct {
	Tempo       int             `json:"tempo"`
	Style       Style           `json:"style"`
	Bars        int             `json:"bars"`
	Section     Section         `json:"section,omitempty"`
	Complexity  int             `json:"complexity"`
	Humanized   bool            `json:"humanized"`
	Description string          `json:"description"`
	Voices      map[Voice][]Hit `json:"voices"`
}

// score is the mutable accumulator owned by the generator for the duration of
// one call. Sub-routines append through it; they never see the whole map.
type score struct {
	voices map[Voice][]Hit
}

func newScore() *score {
	return &score{voices: make(map[Voice][]Hit)}
}

func (s *score) add(v Voice, h Hit) {
	s.voices[v] = append(s.voices[v], h)
}

// pattern copies only the voices that received at least one hit.
func (s *score) pattern() map[Voice][]Hit {
	out := make(map[Voice][]Hit, len(s.voices))
	for v, hits := range s.voices {
		if len(hits) > 0 {
			out[v] = hits
		}
	}
	return out
}
