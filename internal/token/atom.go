// Package token turns a pinyin-bearing string into a sequence of typed
// atoms: letters with their base alphabet and diacritics, or one of the
// closed set of non-letter tokens the syllable state machine dispatches on.
package token

// Base is the alphabet a Letter atom is built on: the 26 ASCII letters
// (V folds into U, see Tokenize) plus Ŋ for the bare nasal-digraph grapheme.
type Base rune

const (
	A Base = 'A'
	B Base = 'B'
	C Base = 'C'
	D Base = 'D'
	E Base = 'E'
	F Base = 'F'
	G Base = 'G'
	H Base = 'H'
	I Base = 'I'
	J Base = 'J'
	K Base = 'K'
	L Base = 'L'
	M Base = 'M'
	N Base = 'N'
	O Base = 'O'
	P Base = 'P'
	Q Base = 'Q'
	R Base = 'R'
	S Base = 'S'
	T Base = 'T'
	U Base = 'U'
	W Base = 'W'
	X Base = 'X'
	Y Base = 'Y'
	Z Base = 'Z'
	// Ŋ is the base for the bare nasal-digraph grapheme ŋ/Ŋ.
	Ŋ Base = 'Ŋ'
)

// Lower returns the lowercase spelling of the base letter.
func (b Base) Lower() string {
	switch b {
	case Ŋ:
		return "ŋ"
	default:
		r := rune(b)
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return string(r)
	}
}

// Diacritic is a combining mark recognized on a Letter atom.
type Diacritic int

const (
	Umlaut     Diacritic = iota // ü
	Macron                      // first tone
	Acute                       // second tone
	Hacek                       // third tone
	Breve                       // third tone, non-strict only
	Grave                       // fourth tone
	Circumflex                  // ĉ, ê, ẑ, ŝ
)

// Combiner returns the Unicode combining character for d.
func (d Diacritic) Combiner() rune {
	switch d {
	case Umlaut:
		return '̈'
	case Macron:
		return '̄'
	case Acute:
		return '́'
	case Hacek:
		return '̌'
	case Breve:
		return '̆'
	case Grave:
		return '̀'
	case Circumflex:
		return '̂'
	}
	return 0
}

// Kind distinguishes the closed set of atom shapes.
type Kind int

const (
	KindLetter Kind = iota
	KindLightToneMarker
	KindApostrophe
	KindSpace
	KindPunctuation
	KindOthers
)

// Atom is a single grapheme cluster, classified.
type Atom struct {
	Kind        Kind
	Base        Base
	Capitalized bool
	Diacritics  []Diacritic
	// Text is the original grapheme, kept for Space/Punctuation/Others so
	// the syllable state machine can echo it back verbatim when the
	// corresponding preserve flag is set.
	Text string
}

// HasDiacritics reports whether the atom is a Letter carrying at least one
// combining mark.
func (a Atom) HasDiacritics() bool {
	return a.Kind == KindLetter && len(a.Diacritics) > 0
}

// OnlyDiacritic reports whether a Letter atom's diacritic list is exactly
// [d], with no companions.
func (a Atom) OnlyDiacritic(d Diacritic) bool {
	return a.Kind == KindLetter && len(a.Diacritics) == 1 && a.Diacritics[0] == d
}
