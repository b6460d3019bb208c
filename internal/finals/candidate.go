package finals

import "github.com/f3rmion/pinyinseg/internal/token"

// Generate enumerates every Candidate whose letter span matches the shape
// of the atom stream at cursor, without consuming the cursor. The order
// candidates are appended in is the backtracking priority the caller must
// try them in: shorter finals before the longer finals that extend them.
func Generate(atoms []token.Atom, cursor int, strict bool) []Candidate {
	var ans []Candidate

	at := func(offset int) (token.Atom, bool) {
		i := cursor + offset
		if i < 0 || i >= len(atoms) {
			return token.Atom{}, false
		}
		return atoms[i], true
	}

	// toneless reports whether the atom at offset is a letter with exactly
	// base and exactly the given diacritic list (possibly empty).
	toneless := func(offset int, base token.Base, diacritics ...token.Diacritic) bool {
		a, ok := at(offset)
		if !ok || a.Kind != token.KindLetter || a.Base != base {
			return false
		}
		if len(a.Diacritics) != len(diacritics) {
			return false
		}
		for i, d := range diacritics {
			if a.Diacritics[i] != d {
				return false
			}
		}
		return true
	}

	// toned reports the tone of the letter at offset if it has base base
	// and, when companion is given, the companion diacritic (in either
	// order) alongside the tone mark; empty diacritics mean Fifth tone.
	toned := func(offset int, base token.Base, companion ...token.Diacritic) (Tone, bool) {
		a, ok := at(offset)
		if !ok || a.Kind != token.KindLetter || a.Base != base {
			return 0, false
		}
		if len(companion) == 0 {
			switch len(a.Diacritics) {
			case 0:
				return Fifth, true
			case 1:
				return toneOf(a.Diacritics[0], strict)
			default:
				return 0, false
			}
		}
		c := companion[0]
		switch {
		case len(a.Diacritics) == 1 && a.Diacritics[0] == c:
			return Fifth, true // companion present, no tone mark: Fifth tone
		case len(a.Diacritics) == 2 && a.Diacritics[0] == c:
			return toneOf(a.Diacritics[1], strict)
		case len(a.Diacritics) == 2 && a.Diacritics[1] == c:
			return toneOf(a.Diacritics[0], strict)
		default:
			return 0, false
		}
	}

	push := func(ŋ bool, f Final, tone Tone) {
		ans = append(ans, Candidate{UsesNasalDigraph: ŋ, Final: f, Tone: tone})
	}

	if tone, ok := toned(0, token.A); ok {
		push(false, A, tone)
		if toneless(1, token.I) {
			push(false, Ai, tone)
		}
		if toneless(1, token.N) {
			push(false, An, tone)
		}
		if toneless(1, token.Ŋ) {
			push(true, Ang, tone)
		}
		if toneless(1, token.N) && toneless(2, token.G) {
			push(false, Ang, tone)
		}
		if toneless(1, token.O) {
			push(false, Ao, tone)
		}
	}

	if tone, ok := toned(0, token.E, token.Circumflex); ok {
		push(false, Ê, tone)
	}

	if tone, ok := toned(0, token.E); ok {
		push(false, E, tone)
		if toneless(1, token.I) {
			push(false, Ei, tone)
		}
		if toneless(1, token.N) {
			push(false, En, tone)
		}
		if toneless(1, token.N) && toneless(2, token.G) {
			push(false, Eng, tone)
		}
		if toneless(1, token.Ŋ) {
			push(true, Eng, tone)
		}
	}

	if tone, ok := toned(0, token.O); ok {
		push(false, O, tone)
		if toneless(1, token.Ŋ) {
			push(true, Ong, tone)
		}
		if toneless(1, token.N) && toneless(2, token.G) {
			push(false, Ong, tone)
		}
		if toneless(1, token.U) {
			push(false, Ou, tone)
		}
	}

	// For I, U and Ü, both tone!/toneless! branches must fire: a light
	// (toneless) single vowel is indistinguishable from tone Fifth, and
	// the state machine must be able to explore both interpretations.
	if tone, ok := toned(0, token.I); ok {
		push(false, I, tone)
		if toneless(1, token.N) {
			push(false, In, tone)
		}
		if toneless(1, token.N) && toneless(2, token.G) {
			push(false, Ing, tone)
		}
		if toneless(1, token.Ŋ) {
			push(true, Ing, tone)
		}
	}

	if toneless(0, token.I) {
		if tone, ok := toned(1, token.A); ok {
			push(false, Ia, tone)
			if toneless(2, token.N) {
				push(false, Ian, tone)
			}
			if toneless(2, token.N) && toneless(3, token.G) {
				push(false, Iang, tone)
			}
			if toneless(2, token.Ŋ) {
				push(true, Iang, tone)
			}
			if toneless(2, token.O) {
				push(false, Iao, tone)
			}
		}

		if tone, ok := toned(1, token.E); ok {
			push(false, Ie, tone)
		}

		if tone, ok := toned(1, token.U); ok {
			push(false, Iu, tone)
		}

		if tone, ok := toned(1, token.O); ok {
			push(false, Io, tone)
			if toneless(2, token.N) && toneless(3, token.G) {
				push(false, Iong, tone)
			}
			if toneless(2, token.Ŋ) {
				push(true, Iong, tone)
			}
		}
	}

	if tone, ok := toned(0, token.U); ok {
		push(false, U, tone)
		if toneless(1, token.N) {
			push(false, Un, tone)
		}
	}

	if toneless(0, token.U) {
		if tone, ok := toned(1, token.A); ok {
			push(false, Ua, tone)
			if toneless(2, token.I) {
				push(false, Uai, tone)
			}
			if toneless(2, token.N) {
				push(false, Uan, tone)
			}
			if toneless(2, token.N) && toneless(3, token.G) {
				push(false, Uang, tone)
			}
			if toneless(2, token.Ŋ) {
				push(true, Uang, tone)
			}
		}

		if tone, ok := toned(1, token.E); ok {
			push(false, Ue, tone)
		}

		if tone, ok := toned(1, token.I); ok {
			push(false, Ui, tone)
		}

		if tone, ok := toned(1, token.O); ok {
			push(false, Uo, tone)
		}
	}

	if tone, ok := toned(0, token.U, token.Umlaut); ok {
		push(false, Ü, tone)
		if toneless(1, token.N) {
			push(false, Ün, tone)
		}
	}

	if toneless(0, token.U, token.Umlaut) {
		if tone, ok := toned(1, token.A); ok {
			if toneless(2, token.N) {
				push(false, Üan, tone)
			}
		}

		if tone, ok := toned(1, token.E); ok {
			push(false, Üe, tone)
		}
	}

	return ans
}

// toneOf maps a single diacritic to its tone; Breve only succeeds when not
// strict, where it is repaired to Third.
func toneOf(d token.Diacritic, strict bool) (Tone, bool) {
	switch d {
	case token.Macron:
		return First, true
	case token.Acute:
		return Second, true
	case token.Hacek:
		return Third, true
	case token.Breve:
		if strict {
			return 0, false
		}
		return Third, true
	case token.Grave:
		return Fourth, true
	default:
		return 0, false
	}
}
