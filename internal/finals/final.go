// Package finals enumerates the plausible non-rhotic pinyin finals that
// could start at a cursor position in the atom stream, and formats a
// committed (final, tone) pair back into its canonical spelling.
package finals

// Final is one of the 37 non-rhotic pinyin finals.
type Final int

const (
	A Final = iota
	Ai
	An
	Ang
	Ao
	E
	Ê
	Ei
	En
	Eng
	I
	Ia
	Ian
	Iang
	Iao
	Ie
	In
	Ing
	Iong
	Iu
	Io
	O
	Ong
	Ou
	U
	Ua
	Uai
	Uan
	Uang
	Ue
	Ui
	Un
	Uo
	Ü
	Üan
	Üe
	Ün
)

// Len is the tabulated letter-span of the final: 1 for single vowels, 2/3/4
// for the two/three/four-letter finals. When the nasal is spelled as the
// bare grapheme ŋ instead of "ng", the actual span consumed is one less —
// callers track that separately via Candidate.UsesNasalDigraph.
func (f Final) Len() int {
	switch f {
	case A, E, Ê, I, O, U, Ü:
		return 1
	case Ai, An, Ao, Ei, En, Ia, Ie, In, Iu, Io, Ou, Ua, Ue, Ui, Un, Uo, Üe, Ün:
		return 2
	case Ang, Eng, Ian, Iao, Ing, Ong, Uai, Uan, Üan:
		return 3
	case Iang, Iong, Uang:
		return 4
	}
	panic("finals: unknown final")
}

// spelling is the (pre-tone, post-tone) split used to place the tone
// combiner on the conventional tone-bearing vowel.
var spelling = map[Final][2]string{
	A:    {"a", ""},
	Ai:   {"a", "i"},
	An:   {"a", "n"},
	Ang:  {"a", "ng"},
	Ao:   {"a", "o"},
	E:    {"e", ""},
	Ê:    {"ê", ""},
	Ei:   {"e", "i"},
	En:   {"e", "n"},
	Eng:  {"e", "ng"},
	I:    {"i", ""},
	Ia:   {"ia", ""},
	Ian:  {"ia", "n"},
	Iang: {"ia", "ng"},
	Iao:  {"ia", "o"},
	Ie:   {"ie", ""},
	In:   {"i", "n"},
	Ing:  {"i", "ng"},
	Iong: {"io", "ng"},
	Iu:   {"iu", ""},
	Io:   {"io", ""},
	O:    {"o", ""},
	Ong:  {"o", "ng"},
	Ou:   {"o", "u"},
	U:    {"u", ""},
	Ua:   {"ua", ""},
	Uai:  {"ua", "i"},
	Uan:  {"ua", "n"},
	Uang: {"ua", "ng"},
	Ue:   {"ue", ""},
	Ui:   {"ui", ""},
	Un:   {"u", "n"},
	Uo:   {"uo", ""},
	Ü:    {"ü", ""},
	Üan:  {"üa", "n"},
	Üe:   {"üe", ""},
	Ün:   {"ü", "n"},
}

// Tone is one of the five suprasegmental tones; Fifth is neutral tone.
type Tone int

const (
	First Tone = iota
	Second
	Third
	Fourth
	Fifth
)

// Combiner returns the Unicode combining character for t, or 0 for Fifth.
func (t Tone) Combiner() rune {
	switch t {
	case First:
		return '̄'
	case Second:
		return '́'
	case Third:
		return '̌'
	case Fourth:
		return '̀'
	default:
		return 0
	}
}

// Candidate is a plausible (final, tone) pair the generator found starting
// at a cursor, along with whether the nasal coda was spelled as the bare
// grapheme ŋ rather than "ng".
type Candidate struct {
	UsesNasalDigraph bool
	Final            Final
	Tone             Tone
}

// Span is the number of atoms this candidate actually consumes from the
// cursor: the tabulated length, minus one when the nasal was spelled ŋ.
func (c Candidate) Span() int {
	n := c.Final.Len()
	if c.UsesNasalDigraph {
		n--
	}
	return n
}

// Spell renders the pre-composed (pre-NFC) spelling of a final with its
// tone mark inserted at the conventional position. The caller is
// responsible for NFC-normalizing the result.
func Spell(f Final, tone Tone) string {
	halves, ok := spelling[f]
	if !ok {
		panic("finals: unknown final")
	}
	combiner := tone.Combiner()
	if combiner == 0 {
		return halves[0] + halves[1]
	}
	return halves[0] + string(combiner) + halves[1]
}
