package token

import (
	"testing"
)

func TestTokenizeBasicLetters(t *testing.T) {
	atoms, err := Tokenize("jintian", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Base{J, I, N, T, I, A, N}
	if len(atoms) != len(want) {
		t.Fatalf("got %d atoms, want %d", len(atoms), len(want))
	}
	for i, b := range want {
		if atoms[i].Kind != KindLetter || atoms[i].Base != b {
			t.Fatalf("atom %d: got %+v, want base %v", i, atoms[i], b)
		}
	}
}

func TestTokenizeToneMarks(t *testing.T) {
	atoms, err := Tokenize("ā", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(atoms) != 1 || atoms[0].Base != A || len(atoms[0].Diacritics) != 1 || atoms[0].Diacritics[0] != Macron {
		t.Fatalf("got %+v, want A with Macron", atoms)
	}
}

func TestTokenizeUmlaut(t *testing.T) {
	for _, s := range []string{"ü", "v"} {
		atoms, err := Tokenize(s, false, false)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}
		if len(atoms) != 1 || atoms[0].Base != U || !atoms[0].OnlyDiacritic(Umlaut) {
			t.Fatalf("%q: got %+v, want U with Umlaut", s, atoms)
		}
	}
}

func TestTokenizeConfusableStrictRejects(t *testing.T) {
	_, err := Tokenize("zǒnɡshì", true, false) // U+0261 LATIN SMALL LETTER SCRIPT G
	if err == nil {
		t.Fatal("expected an error in strict mode")
	}
	if _, ok := err.(*ConfusableError); !ok {
		t.Fatalf("expected *ConfusableError, got %T", err)
	}
}

func TestTokenizeConfusableLooseRepairs(t *testing.T) {
	atoms, err := Tokenize("zǒnɡshì", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, a := range atoms {
		if a.Kind == KindLetter && a.Base == G {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the confusable to be repaired to G, got %+v", atoms)
	}
}

func TestTokenizeApostropheAndCurlyQuote(t *testing.T) {
	atoms, err := Tokenize("a'a’a", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var kinds []Kind
	for _, a := range atoms {
		kinds = append(kinds, a.Kind)
	}
	want := []Kind{KindLetter, KindApostrophe, KindLetter, KindApostrophe, KindLetter}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("got %v, want %v", kinds, want)
		}
	}
}

func TestTokenizeCurlyQuoteAsMiscellaneousWhenSeparated(t *testing.T) {
	atoms, err := Tokenize("a’a", false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(atoms) != 3 || atoms[1].Kind != KindOthers {
		t.Fatalf("got %+v, want the curly quote classified as Others", atoms)
	}
}

func TestTokenizeSpacesAndPunctuation(t *testing.T) {
	atoms, err := Tokenize("nǐ hǎo?", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var kinds []Kind
	for _, a := range atoms {
		kinds = append(kinds, a.Kind)
	}
	if kinds[2] != KindSpace {
		t.Fatalf("expected a space before hǎo, got %v", kinds)
	}
	if kinds[len(kinds)-1] != KindPunctuation {
		t.Fatalf("expected trailing punctuation, got %v", kinds)
	}
}

func TestTokenizeCJKIsOthers(t *testing.T) {
	atoms, err := Tokenize("你好", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range atoms {
		if a.Kind != KindOthers {
			t.Fatalf("got %+v, want KindOthers", a)
		}
	}
}

func TestTokenizeLightToneMarker(t *testing.T) {
	atoms, err := Tokenize("·ma", false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(atoms) == 0 || atoms[0].Kind != KindLightToneMarker {
		t.Fatalf("got %+v, want a leading light-tone marker", atoms)
	}
}
