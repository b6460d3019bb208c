package pinyinparser

import (
	"github.com/f3rmion/pinyinseg/internal/token"
)

// Iterator pulls syllables out of a single input string, one at a time.
// It is single-threaded and holds no shared state: each call to Next
// advances its own cursor over an atom buffer built once at construction.
//
// Next returns (syllable, true, nil) for each emitted token, (_, false,
// nil) once the input is exhausted, and (_, false, err) if the input
// cannot be segmented further. Once Next returns a non-nil error, every
// subsequent call returns that same error: the iterator does not attempt
// to resynchronize past a fatal condition.
type Iterator struct {
	cfg   Parser
	atoms []token.Atom

	pos     int
	state   stateKind
	initial spellingInitial
	zcs     zcs

	err  error
	done bool
}

func newIterator(p Parser, input string) *Iterator {
	atoms, err := token.Tokenize(input, p.strictness.IsStrict(), p.strictness == StrictSeparateCurlyQuote)
	if err != nil {
		return &Iterator{cfg: p, err: wrapTokenizeError(err), done: true}
	}
	return &Iterator{cfg: p, atoms: atoms, state: stBeforeWordInitial}
}

func wrapTokenizeError(err error) error {
	return &ParseError{Kind: ErrConfusableLetter, Detail: err.Error()}
}

// Next advances the iterator by one syllable (or one echoed non-pinyin
// grapheme, when a preserve flag is set). See the Iterator doc comment for
// the return-value contract.
func (it *Iterator) Next() (result string, ok bool, err error) {
	if it.err != nil {
		return "", false, it.err
	}
	if it.done {
		return "", false, nil
	}
	defer func() {
		if r := recover(); r != nil {
			pe := panicToParseError(r)
			it.err = pe
			it.done = true
			result, ok, err = "", false, pe
		}
	}()

	result, ok, err = it.step()
	if err != nil {
		it.err = err
		it.done = true
		return "", false, err
	}
	if !ok {
		it.done = true
	}
	return result, ok, nil
}

// Collect drains it to completion, returning every emitted syllable. It
// stops and returns the fatal error, if any, alongside what was collected
// before it.
func (it *Iterator) Collect() ([]string, error) {
	var out []string
	for {
		s, ok, err := it.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, s)
	}
}

func panicToParseError(r any) *ParseError {
	if pe, ok := r.(*ParseError); ok {
		return pe
	}
	if err, ok := r.(error); ok {
		return &ParseError{Kind: ErrUnmatchedFinal, Detail: err.Error()}
	}
	return &ParseError{Kind: ErrUnmatchedFinal, Detail: "internal: unexpected panic"}
}

func (it *Iterator) peekAt(pos int) (token.Atom, bool) {
	if pos < 0 || pos >= len(it.atoms) {
		return token.Atom{}, false
	}
	return it.atoms[pos], true
}
