package pinyinparser

import (
	"golang.org/x/text/unicode/norm"

	"github.com/f3rmion/pinyinseg/internal/finals"
	"github.com/f3rmion/pinyinseg/internal/token"
)

// step runs the state machine forward until it has a syllable (or echoed
// atom) to emit, the stream is exhausted, or it hits a fatal condition.
func (it *Iterator) step() (string, bool, error) {
	for {
		if it.pos >= len(it.atoms) {
			switch it.state {
			case stBeforeWordInitial, stAfterSyllable:
				return "", false, nil
			default:
				return "", false, &ParseError{Kind: ErrUnmatchedFinal, Detail: "input ended mid-initial"}
			}
		}

		switch it.state {
		case stBeforeWordInitial, stAfterSyllable:
			s, has, err := it.handleBetweenSyllables(it.atoms[it.pos])
			if err != nil {
				return "", false, err
			}
			if has {
				return s, true, nil
			}

		case stZCSParsed:
			a := it.atoms[it.pos]
			if a.Kind != token.KindLetter {
				return "", false, &ParseError{Kind: ErrMalformedSyllable, Detail: "non-letter after z/c/s"}
			}
			if a.Base == token.H && len(a.Diacritics) == 0 {
				it.pos++
				it.state = stInitialParsed
				it.initial = it.zcs.aspirated()
			} else {
				it.state = stInitialParsed
				it.initial = it.zcs.plain()
			}

		case stInitialParsed:
			a := it.atoms[it.pos]
			if a.Kind != token.KindLetter {
				return "", false, &ParseError{Kind: ErrMalformedSyllable, Detail: "non-letter after initial"}
			}
			return it.matchFinal()
		}
	}
}

// handleBetweenSyllables dispatches a single atom seen in BeforeWordInitial
// or AfterSyllableMaybeApostrophe.
func (it *Iterator) handleBetweenSyllables(a token.Atom) (string, bool, error) {
	switch a.Kind {
	case token.KindLightToneMarker:
		it.pos++
		it.state = stBeforeWordInitial
		return "", false, nil

	case token.KindApostrophe:
		return "", false, &ParseError{Kind: ErrMalformedSyllable, Detail: "apostrophe before any initial"}

	case token.KindPunctuation:
		it.pos++
		it.state = stBeforeWordInitial
		if it.cfg.preservePunctuation {
			return a.Text, true, nil
		}
		return "", false, nil

	case token.KindSpace:
		it.pos++
		it.state = stBeforeWordInitial
		if it.cfg.preserveSpaces {
			return a.Text, true, nil
		}
		return "", false, nil

	case token.KindOthers:
		it.pos++
		it.state = stBeforeWordInitial
		if it.cfg.preserveMiscellaneous {
			return a.Text, true, nil
		}
		return "", false, nil
	}

	return it.handleLetterBetweenSyllables(a)
}

// handleLetterBetweenSyllables classifies a Letter atom seen between
// syllables: it either commits an initial (possibly still ambiguous, for
// Z/C/S), emits a standalone toned letter syllable, rewinds onto the zero
// initial, or fails on an illegal word-initial vowel.
func (it *Iterator) handleLetterBetweenSyllables(a token.Atom) (string, bool, error) {
	switch a.Base {
	case token.B:
		return it.commitInitial(siB)
	case token.P:
		return it.commitInitial(siP)
	case token.F:
		return it.commitInitial(siF)
	case token.D:
		return it.commitInitial(siD)
	case token.T:
		return it.commitInitial(siT)
	case token.L:
		return it.commitInitial(siL)
	case token.G:
		return it.commitInitial(siG)
	case token.K:
		return it.commitInitial(siK)
	case token.H:
		return it.commitInitial(siH)
	case token.J:
		return it.commitInitial(siJ)
	case token.Q:
		return it.commitInitial(siQ)
	case token.X:
		return it.commitInitial(siX)
	case token.R:
		return it.commitInitial(siR)
	case token.Y:
		return it.commitInitial(siY)
	case token.W:
		return it.commitInitial(siW)

	case token.M:
		if len(a.Diacritics) == 0 {
			return it.commitInitial(siM)
		}
		it.pos++
		it.state = stBeforeWordInitial
		return standaloneLetterSyllable(a), true, nil

	case token.N:
		if len(a.Diacritics) == 0 {
			return it.commitInitial(siN)
		}
		it.pos++
		it.state = stBeforeWordInitial
		return standaloneLetterSyllable(a), true, nil

	case token.Z:
		return it.handleZCSLetter(a, zcsZ)
	case token.C:
		return it.handleZCSLetter(a, zcsC)
	case token.S:
		return it.handleZCSLetter(a, zcsS)

	case token.A, token.E, token.O:
		// Rewind: leave the cursor on this atom so the final generator
		// sees it as the first letter of a zero-initial syllable.
		it.state = stInitialParsed
		it.initial = siZeroAEO
		return "", false, nil

	case token.I, token.U, token.Ŋ:
		return "", false, &ParseError{Kind: ErrIllegalSyllableStart, Detail: "syllable begins with i/u/ŋ"}
	}

	return "", false, &ParseError{Kind: ErrMalformedSyllable, Detail: "unrecognized letter base"}
}

func (it *Iterator) commitInitial(si spellingInitial) (string, bool, error) {
	it.pos++
	it.state = stInitialParsed
	it.initial = si
	return "", false, nil
}

func (it *Iterator) handleZCSLetter(a token.Atom, z zcs) (string, bool, error) {
	if len(a.Diacritics) == 0 {
		it.pos++
		it.state = stZCSParsed
		it.zcs = z
		return "", false, nil
	}
	if a.OnlyDiacritic(token.Circumflex) {
		it.pos++
		it.state = stInitialParsed
		it.initial = z.aspirated()
		return "", false, nil
	}
	it.pos++
	it.state = stBeforeWordInitial
	return standaloneLetterSyllable(a), true, nil
}

// matchFinal runs the final-match subroutine of the state machine: it
// tries each candidate the generator offers, in priority order, checking
// the atom immediately to the right to decide whether to commit or
// move on to the next candidate.
func (it *Iterator) matchFinal() (string, bool, error) {
	candidates := finals.Generate(it.atoms, it.pos, it.cfg.strictness.IsStrict())

	for _, c := range candidates {
		span := c.Span()
		newpos := it.pos + span
		next, hasNext := it.peekAt(newpos)

		if !hasNext {
			it.pos = newpos
			it.state = stAfterSyllable
			return it.emit(c, ""), true, nil
		}

		switch next.Kind {
		case token.KindApostrophe:
			after, hasAfter := it.peekAt(newpos + 1)
			if it.cfg.strictness.IsStrict() {
				if !hasAfter || after.Kind != token.KindLetter || !isZeroInitialBase(after.Base) {
					return "", false, &ParseError{Kind: ErrStrictApostropheMisplaced, Detail: "apostrophe not followed by a/e/o"}
				}
			}
			it.pos = newpos + 1
			it.state = stAfterSyllable
			return it.emit(c, ""), true, nil

		case token.KindPunctuation, token.KindLightToneMarker, token.KindSpace, token.KindOthers:
			it.pos = newpos
			it.state = stAfterSyllable
			return it.emit(c, ""), true, nil

		case token.KindLetter:
			switch {
			case isVowelOrNasalBase(next.Base):
				continue // over/under-consumption: try the next candidate

			case next.Base == token.R:
				after, hasAfter := it.peekAt(newpos + 1)
				if hasAfter && after.Kind == token.KindLetter && isVowelBase(after.Base) {
					// R begins the next syllable; this one ends clean.
					it.pos = newpos
					it.state = stAfterSyllable
					return it.emit(c, ""), true, nil
				}
				it.pos = newpos + 1
				it.state = stAfterSyllable
				return it.emit(c, "r"), true, nil

			case next.Base == token.G || next.Base == token.N:
				after, hasAfter := it.peekAt(newpos + 1)
				if hasAfter && after.Kind == token.KindLetter && isVowelBase(after.Base) {
					// G/N is stolen by the next syllable's initial.
					it.pos = newpos
					it.state = stAfterSyllable
					return it.emit(c, ""), true, nil
				}
				continue // otherwise this candidate under-consumed

			default:
				it.pos = newpos
				it.state = stAfterSyllable
				return it.emit(c, ""), true, nil
			}
		}
	}

	return "", false, &ParseError{Kind: ErrUnmatchedFinal, Detail: "no final candidate fits the right context"}
}

// emit assembles the committed initial, the candidate's spelling, and any
// rhotic suffix into a single NFC-normalized syllable.
func (it *Iterator) emit(c finals.Candidate, suffix string) string {
	body := it.initial.text() + finals.Spell(c.Final, c.Tone) + suffix
	return norm.NFC.String(body)
}

// standaloneLetterSyllable formats a single letter carrying its own
// diacritics as a whole syllable: this covers toned M/N (ḿ ń ň ǹ) and the
// degenerate case of a Z/C/S carrying a diacritic other than Circumflex.
func standaloneLetterSyllable(a token.Atom) string {
	s := a.Base.Lower()
	for _, d := range a.Diacritics {
		if c := d.Combiner(); c != 0 {
			s += string(c)
		}
	}
	return norm.NFC.String(s)
}
