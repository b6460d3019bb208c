package pinyinparser

import "github.com/f3rmion/pinyinseg/internal/token"

// spellingInitial is the committed onset consonant(s) of a syllable, or
// the zero-initial marker for a syllable beginning with a/e/o.
type spellingInitial int

const (
	siB spellingInitial = iota
	siP
	siM
	siF
	siD
	siT
	siN
	siL
	siG
	siK
	siH
	siJ
	siQ
	siX
	siZH
	siCH
	siSH
	siR
	siZ
	siC
	siS
	siY
	siW
	siZeroAEO
)

// text is the lowercase spelling this initial contributes to an emitted
// syllable; the zero-initial contributes nothing.
func (si spellingInitial) text() string {
	switch si {
	case siB:
		return "b"
	case siP:
		return "p"
	case siM:
		return "m"
	case siF:
		return "f"
	case siD:
		return "d"
	case siT:
		return "t"
	case siN:
		return "n"
	case siL:
		return "l"
	case siG:
		return "g"
	case siK:
		return "k"
	case siH:
		return "h"
	case siJ:
		return "j"
	case siQ:
		return "q"
	case siX:
		return "x"
	case siZH:
		return "zh"
	case siCH:
		return "ch"
	case siSH:
		return "sh"
	case siR:
		return "r"
	case siZ:
		return "z"
	case siC:
		return "c"
	case siS:
		return "s"
	case siY:
		return "y"
	case siW:
		return "w"
	case siZeroAEO:
		return ""
	}
	panic("pinyinparser: unknown spelling initial")
}

// zcs is the pending, not-yet-disambiguated Z/C/S initial: it might still
// turn into ZH/CH/SH if an H follows.
type zcs int

const (
	zcsZ zcs = iota
	zcsC
	zcsS
)

func (z zcs) plain() spellingInitial {
	switch z {
	case zcsZ:
		return siZ
	case zcsC:
		return siC
	case zcsS:
		return siS
	}
	panic("pinyinparser: unknown zcs")
}

func (z zcs) aspirated() spellingInitial {
	switch z {
	case zcsZ:
		return siZH
	case zcsC:
		return siCH
	case zcsS:
		return siSH
	}
	panic("pinyinparser: unknown zcs")
}

// stateKind is the four-state automaton driving the top-level loop.
type stateKind int

const (
	stBeforeWordInitial stateKind = iota
	stInitialParsed
	stZCSParsed
	stAfterSyllable
)

func isZeroInitialBase(b token.Base) bool {
	return b == token.A || b == token.E || b == token.O
}

// isVowelBase reports whether b is one of the five vowel letters used by
// the erhua and consonant-steal right-context checks (not Ŋ).
func isVowelBase(b token.Base) bool {
	switch b {
	case token.A, token.E, token.I, token.O, token.U:
		return true
	}
	return false
}

// isVowelOrNasalBase additionally includes Ŋ, the over/under-consumption
// check used right after a tentatively committed final.
func isVowelOrNasalBase(b token.Base) bool {
	return isVowelBase(b) || b == token.Ŋ
}
