package token

import (
	"fmt"
	"unicode"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// ConfusableError reports a grapheme that looks like a pinyin letter but
// is not one (Greek letters, IPA symbols), rejected under strict tokenizing.
type ConfusableError struct {
	Grapheme string
	LooksLike string
}

func (e *ConfusableError) Error() string {
	return fmt.Sprintf("%q looks like %q, but it is not", e.Grapheme, e.LooksLike)
}

// Tokenize segments s into extended grapheme clusters (UAX #29) and
// classifies each one into an Atom.
//
// strict rejects confusable look-alikes, returning a *ConfusableError.
// Breve is accepted here in either mode; whether it counts as third tone is
// decided by the final-candidate generator. strictSeparateCurlyQuote
// additionally classifies the curly right single quote ’ as Others instead
// of Apostrophe.
func Tokenize(s string, strict, strictSeparateCurlyQuote bool) ([]Atom, error) {
	seg := graphemes.FromString(s)
	var atoms []Atom
	for seg.Next() {
		g := seg.Value()
		atom, err := classify(g, strict, strictSeparateCurlyQuote)
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, atom)
	}
	return atoms, nil
}

func letter(base Base, cap bool, diacritics ...Diacritic) Atom {
	return Atom{Kind: KindLetter, Base: base, Capitalized: cap, Diacritics: diacritics}
}

// classify maps a single grapheme cluster to an Atom, per the per-grapheme
// algorithm in the tokenizer's contract: inspect the first scalar, then fold
// in any remaining combining characters.
func classify(g string, strict, strictSeparateCurlyQuote bool) (Atom, error) {
	runes := []rune(g)
	if len(runes) == 0 {
		return Atom{}, fmt.Errorf("tokenize: empty grapheme")
	}
	first := runes[0]

	base, err := classifyFirst(g, first, strict)
	if err != nil {
		return Atom{}, err
	}
	if base.Kind != KindLetter {
		return base, nil
	}

	for _, r := range runes[1:] {
		d, ok := diacriticOf(r)
		if !ok {
			return Atom{Kind: KindOthers, Text: g}, nil
		}
		base.Diacritics = append(base.Diacritics, d)
	}
	return base, nil
}

func classifyFirst(g string, first rune, strict bool) (Atom, error) {
	switch first {
	case 'a':
		return letter(A, false), nil
	case 'A':
		return letter(A, true), nil
	case 'b':
		return letter(B, false), nil
	case 'B':
		return letter(B, true), nil
	case 'c':
		return letter(C, false), nil
	case 'C':
		return letter(C, true), nil
	case 'd':
		return letter(D, false), nil
	case 'D':
		return letter(D, true), nil
	case 'e':
		return letter(E, false), nil
	case 'E':
		return letter(E, true), nil
	case 'f':
		return letter(F, false), nil
	case 'F':
		return letter(F, true), nil
	case 'g':
		return letter(G, false), nil
	case 'G':
		return letter(G, true), nil
	case 'h':
		return letter(H, false), nil
	case 'H':
		return letter(H, true), nil
	case 'i':
		return letter(I, false), nil
	case 'I':
		return letter(I, true), nil
	case 'j':
		return letter(J, false), nil
	case 'J':
		return letter(J, true), nil
	case 'k':
		return letter(K, false), nil
	case 'K':
		return letter(K, true), nil
	case 'l':
		return letter(L, false), nil
	case 'L':
		return letter(L, true), nil
	case 'm':
		return letter(M, false), nil
	case 'M':
		return letter(M, true), nil
	case 'n':
		return letter(N, false), nil
	case 'N':
		return letter(N, true), nil
	case 'o':
		return letter(O, false), nil
	case 'O':
		return letter(O, true), nil
	case 'p':
		return letter(P, false), nil
	case 'P':
		return letter(P, true), nil
	case 'q':
		return letter(Q, false), nil
	case 'Q':
		return letter(Q, true), nil
	case 'r':
		return letter(R, false), nil
	case 'R':
		return letter(R, true), nil
	case 's':
		return letter(S, false), nil
	case 'S':
		return letter(S, true), nil
	case 't':
		return letter(T, false), nil
	case 'T':
		return letter(T, true), nil
	case 'u':
		return letter(U, false), nil
	case 'U':
		return letter(U, true), nil
	case 'w':
		return letter(W, false), nil
	case 'W':
		return letter(W, true), nil
	case 'x':
		return letter(X, false), nil
	case 'X':
		return letter(X, true), nil
	case 'y':
		return letter(Y, false), nil
	case 'Y':
		return letter(Y, true), nil
	case 'z':
		return letter(Z, false), nil
	case 'Z':
		return letter(Z, true), nil

	// V/v is treated as ü per the data model.
	case 'v', 'ü':
		return letter(U, false, Umlaut), nil
	case 'V', 'Ü':
		return letter(U, true, Umlaut), nil

	case 'ŋ':
		return letter(Ŋ, false), nil
	case 'Ŋ':
		return letter(Ŋ, true), nil

	case 'ĉ':
		return letter(C, false, Circumflex), nil
	case 'Ĉ':
		return letter(C, true, Circumflex), nil
	case 'ŝ':
		return letter(S, false, Circumflex), nil
	case 'Ŝ':
		return letter(S, true, Circumflex), nil
	case 'ẑ':
		return letter(Z, false, Circumflex), nil
	case 'Ẑ':
		return letter(Z, true, Circumflex), nil
	case 'ê':
		return letter(E, false, Circumflex), nil
	case 'Ê':
		return letter(E, true, Circumflex), nil

	// first tone -- macron
	case 'ā':
		return letter(A, false, Macron), nil
	case 'Ā':
		return letter(A, true, Macron), nil
	case 'ē':
		return letter(E, false, Macron), nil
	case 'Ē':
		return letter(E, true, Macron), nil
	case 'ī':
		return letter(I, false, Macron), nil
	case 'Ī':
		return letter(I, true, Macron), nil
	case 'ō':
		return letter(O, false, Macron), nil
	case 'Ō':
		return letter(O, true, Macron), nil
	case 'ū':
		return letter(U, false, Macron), nil
	case 'Ū':
		return letter(U, true, Macron), nil
	case 'ǖ':
		return letter(U, false, Umlaut, Macron), nil
	case 'Ǖ':
		return letter(U, true, Umlaut, Macron), nil

	// second tone -- acute
	case 'á':
		return letter(A, false, Acute), nil
	case 'Á':
		return letter(A, true, Acute), nil
	case 'é':
		return letter(E, false, Acute), nil
	case 'É':
		return letter(E, true, Acute), nil
	case 'í':
		return letter(I, false, Acute), nil
	case 'Í':
		return letter(I, true, Acute), nil
	case 'ó':
		return letter(O, false, Acute), nil
	case 'Ó':
		return letter(O, true, Acute), nil
	case 'ú':
		return letter(U, false, Acute), nil
	case 'Ú':
		return letter(U, true, Acute), nil
	case 'ǘ':
		return letter(U, false, Umlaut, Acute), nil
	case 'Ǘ':
		return letter(U, true, Umlaut, Acute), nil
	case 'ế':
		return letter(E, false, Circumflex, Acute), nil
	case 'Ế':
		return letter(E, true, Circumflex, Acute), nil
	case 'ḿ':
		return letter(M, false, Acute), nil
	case 'Ḿ':
		return letter(M, true, Acute), nil
	case 'ń':
		return letter(N, false, Acute), nil
	case 'Ń':
		return letter(N, true, Acute), nil

	// third tone -- hacek
	case 'ǎ':
		return letter(A, false, Hacek), nil
	case 'Ǎ':
		return letter(A, true, Hacek), nil
	case 'ě':
		return letter(E, false, Hacek), nil
	case 'Ě':
		return letter(E, true, Hacek), nil
	case 'ǐ':
		return letter(I, false, Hacek), nil
	case 'Ǐ':
		return letter(I, true, Hacek), nil
	case 'ǒ':
		return letter(O, false, Hacek), nil
	case 'Ǒ':
		return letter(O, true, Hacek), nil
	case 'ǔ':
		return letter(U, false, Hacek), nil
	case 'Ǔ':
		return letter(U, true, Hacek), nil
	case 'ǚ':
		return letter(U, false, Umlaut, Hacek), nil
	case 'Ǚ':
		return letter(U, true, Umlaut, Hacek), nil
	case 'ň':
		return letter(N, false, Hacek), nil
	case 'Ň':
		return letter(N, true, Hacek), nil

	// wrong third tone -- breve
	case 'ă':
		return letter(A, false, Breve), nil
	case 'Ă':
		return letter(A, true, Breve), nil
	case 'ĕ':
		return letter(E, false, Breve), nil
	case 'Ĕ':
		return letter(E, true, Breve), nil
	case 'ĭ':
		return letter(I, false, Breve), nil
	case 'Ĭ':
		return letter(I, true, Breve), nil
	case 'ŏ':
		return letter(O, false, Breve), nil
	case 'Ŏ':
		return letter(O, true, Breve), nil
	case 'ŭ':
		return letter(U, false, Breve), nil
	case 'Ŭ':
		return letter(U, true, Breve), nil

	// fourth tone -- grave
	case 'à':
		return letter(A, false, Grave), nil
	case 'À':
		return letter(A, true, Grave), nil
	case 'è':
		return letter(E, false, Grave), nil
	case 'È':
		return letter(E, true, Grave), nil
	case 'ì':
		return letter(I, false, Grave), nil
	case 'Ì':
		return letter(I, true, Grave), nil
	case 'ò':
		return letter(O, false, Grave), nil
	case 'Ò':
		return letter(O, true, Grave), nil
	case 'ù':
		return letter(U, false, Grave), nil
	case 'Ù':
		return letter(U, true, Grave), nil
	case 'ǜ':
		return letter(U, false, Umlaut, Grave), nil
	case 'Ǜ':
		return letter(U, true, Umlaut, Grave), nil
	case 'ề':
		return letter(E, false, Circumflex, Grave), nil
	case 'Ề':
		return letter(E, true, Circumflex, Grave), nil
	case 'ǹ':
		return letter(N, false, Grave), nil
	case 'Ǹ':
		return letter(N, true, Grave), nil

	// confusables: IPA and Greek look-alikes
	case 'ɡ': // IPA /ɡ/
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "g"}
		}
		return letter(G, false), nil
	case 'ɑ', 'α': // IPA /ɑ/, Greek alpha
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "a"}
		}
		return letter(A, false), nil
	case 'ο': // Greek omicron
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "o"}
		}
		return letter(O, false), nil
	case 'Α':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "A"}
		}
		return letter(A, true), nil
	case 'Β':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "B"}
		}
		return letter(B, true), nil
	case 'Ε':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "E"}
		}
		return letter(E, true), nil
	case 'Ζ':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "Z"}
		}
		return letter(Z, true), nil
	case 'Η':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "H"}
		}
		return letter(H, true), nil
	case 'Ι':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "I"}
		}
		return letter(I, true), nil
	case 'Κ':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "K"}
		}
		return letter(K, true), nil
	case 'Μ':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "M"}
		}
		return letter(M, true), nil
	case 'Ν':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "N"}
		}
		return letter(N, true), nil
	case 'Ο':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "O"}
		}
		return letter(O, true), nil
	case 'Ρ':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "P"}
		}
		return letter(P, true), nil
	case 'Τ':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "T"}
		}
		return letter(T, true), nil
	case 'Υ':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "Y"}
		}
		return letter(Y, true), nil
	case 'Χ':
		if strict {
			return Atom{}, &ConfusableError{Grapheme: g, LooksLike: "X"}
		}
		return letter(X, true), nil

	case '·':
		return Atom{Kind: KindLightToneMarker}, nil
	case '\'':
		return Atom{Kind: KindApostrophe}, nil
	case '’': // curly right single quote
		if strictSeparateCurlyQuote {
			return Atom{Kind: KindOthers, Text: g}, nil
		}
		return Atom{Kind: KindApostrophe}, nil
	case '!', '-', '?', '—' /* — */, '…' /* … */ :
		return Atom{Kind: KindPunctuation, Text: g}, nil
	default:
		if isWhitespace(first) {
			return Atom{Kind: KindSpace, Text: g}, nil
		}
		return Atom{Kind: KindOthers, Text: g}, nil
	}
}

func diacriticOf(r rune) (Diacritic, bool) {
	switch r {
	case '̄':
		return Macron, true
	case '́':
		return Acute, true
	case '̌':
		return Hacek, true
	case '̀':
		return Grave, true
	case '̆':
		return Breve, true
	case '̈':
		return Umlaut, true
	case '̂':
		return Circumflex, true
	default:
		return 0, false
	}
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}
