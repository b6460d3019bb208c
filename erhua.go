package pinyinparser

import "strings"

// erhuaRoots are the standalone syllables that happen to end in "r" but
// are not a rhotic-suffixed final: their root is just the letter r, a
// literal syllable in its own right, not an r-suffixed one.
var erhuaRoots = map[string]bool{
	"er":  true,
	"ēr":  true,
	"ér":  true,
	"ěr":  true,
	"èr":  true,
}

// ErhuaSplitter wraps an Iterator and splits the trailing rhotic "r" off
// of each syllable into its own element, except for the standalone erhua
// root syllables (er, ēr, ér, ěr, èr), which pass through intact.
type ErhuaSplitter struct {
	src        *Iterator
	pending    string
	hasPending bool
}

// SplitErhua returns a derived iterator over it that separates the
// rhotic suffix from its host syllable.
func SplitErhua(it *Iterator) *ErhuaSplitter {
	return &ErhuaSplitter{src: it}
}

// Next returns the next element: a syllable, a standalone "r", or a
// preserved non-pinyin grapheme, under the same (string, bool, error)
// contract as Iterator.Next.
func (e *ErhuaSplitter) Next() (string, bool, error) {
	if e.hasPending {
		e.hasPending = false
		return e.pending, true, nil
	}

	s, ok, err := e.src.Next()
	if err != nil || !ok {
		return "", ok, err
	}

	if !strings.HasSuffix(s, "r") || erhuaRoots[s] {
		return s, true, nil
	}

	e.pending = "r"
	e.hasPending = true
	return strings.TrimSuffix(s, "r"), true, nil
}

// Collect drains e to completion, mirroring Iterator.Collect.
func (e *ErhuaSplitter) Collect() ([]string, error) {
	var out []string
	for {
		s, ok, err := e.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, s)
	}
}
