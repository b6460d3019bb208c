package pinyinparser_test

import (
	"testing"

	"github.com/f3rmion/pinyinseg"
)

func collect(t *testing.T, it *pinyinparser.Iterator) []string {
	t.Helper()
	out, err := it.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

func assertEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name  string
		parse func() *pinyinparser.Iterator
		want  []string
	}{
		{"jintian", func() *pinyinparser.Iterator { return pinyinparser.ParseStrict("jīntiān") }, []string{"jīn", "tiān"}},
		{"mianao", func() *pinyinparser.Iterator { return pinyinparser.ParseStrict("mián'ǎo") }, []string{"mián", "ǎo"}},
		{"zhang-circumflex-nasal", func() *pinyinparser.Iterator { return pinyinparser.ParseStrict("Ẑāŋ") }, []string{"zhāng"}},
		{"jiushijiu", func() *pinyinparser.Iterator { return pinyinparser.ParseStrict("jiǔshíjiǔ") }, []string{"jiǔ", "shí", "jiǔ"}},
		{"mianao-breve-loose", func() *pinyinparser.Iterator { return pinyinparser.ParseLoose("mián'ăo") }, []string{"mián", "ǎo"}},
		{"erhua-rhotic", func() *pinyinparser.Iterator { return pinyinparser.ParseStrict("yīdiǎnr") }, []string{"yī", "diǎnr"}},
		{"erhua-root-not-split", func() *pinyinparser.Iterator { return pinyinparser.ParseStrict("yù'ér") }, []string{"yù", "ér"}},
		{"apostrophe-loose-repair", func() *pinyinparser.Iterator { return pinyinparser.ParseLoose("Yīng'guó") }, []string{"yīng", "guó"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertEqual(t, collect(t, c.parse()), c.want)
		})
	}
}

func TestSentenceWithSpaces(t *testing.T) {
	got := collect(t, pinyinparser.ParseStrict("Nǐ xiǎng qù nǎli?"))
	assertEqual(t, got, []string{"nǐ", "xiǎng", "qù", "nǎ", "li"})
}

func TestPreserveMiscellaneousAndSpaces(t *testing.T) {
	p := pinyinparser.New().
		WithStrictness(pinyinparser.Strict).
		PreserveMiscellaneous(true).
		PreserveSpaces(true)
	got := collect(t, p.Parse("你Nǐあ好hǎo"))
	assertEqual(t, got, []string{"你", "nǐ", "あ", "好", "hǎo"})
}

func TestConfusableLetterStrictError(t *testing.T) {
	it := pinyinparser.ParseStrict("zǒnɡshì") // U+0261 LATIN SMALL LETTER SCRIPT G
	_, err := it.Collect()
	if err == nil {
		t.Fatal("expected an error")
	}
	pe, ok := err.(*pinyinparser.ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Kind != pinyinparser.ErrConfusableLetter {
		t.Fatalf("got kind %v, want ErrConfusableLetter", pe.Kind)
	}
}

func TestStrictApostropheMisplacedError(t *testing.T) {
	it := pinyinparser.ParseStrict("Yīng'guó")
	_, err := it.Collect()
	if err == nil {
		t.Fatal("expected an error")
	}
	pe, ok := err.(*pinyinparser.ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Kind != pinyinparser.ErrStrictApostropheMisplaced {
		t.Fatalf("got kind %v, want ErrStrictApostropheMisplaced", pe.Kind)
	}
}

func TestFatalErrorIsSticky(t *testing.T) {
	it := pinyinparser.ParseStrict("zǒnɡshì")
	_, _, err1 := it.Next()
	for err1 == nil {
		_, _, err1 = it.Next()
	}
	_, ok, err2 := it.Next()
	if ok || err2 != err1 {
		t.Fatalf("expected the same sticky error, got ok=%v err=%v", ok, err2)
	}
}

func TestLoneToneVowelIsZeroInitialSyllable(t *testing.T) {
	got := collect(t, pinyinparser.ParseStrict("ā"))
	assertEqual(t, got, []string{"ā"})
}

func TestNasalDigraphFinal(t *testing.T) {
	got := collect(t, pinyinparser.ParseStrict("Ẑāŋ"))
	assertEqual(t, got, []string{"zhāng"})
}

func TestStandaloneTonedNasal(t *testing.T) {
	got := collect(t, pinyinparser.ParseLoose("ḿ"))
	assertEqual(t, got, []string{"ḿ"})
}

func TestIllegalSyllableStart(t *testing.T) {
	it := pinyinparser.ParseStrict("ù")
	_, err := it.Collect()
	pe, ok := err.(*pinyinparser.ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if pe.Kind != pinyinparser.ErrIllegalSyllableStart {
		t.Fatalf("got kind %v, want ErrIllegalSyllableStart", pe.Kind)
	}
}

func TestErhuaSplitter(t *testing.T) {
	e := pinyinparser.SplitErhua(pinyinparser.ParseStrict("yīdiǎnr"))
	got, err := e.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, got, []string{"yī", "diǎn", "r"})
}

func TestErhuaSplitterLeavesRootSyllablesIntact(t *testing.T) {
	e := pinyinparser.SplitErhua(pinyinparser.ParseStrict("yù'ér"))
	got, err := e.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, got, []string{"yù", "ér"})
}

func TestStrictLooseEquivalenceOnWellFormedInput(t *testing.T) {
	const input = "Nǐ xiǎng qù nǎli"
	strict := collect(t, pinyinparser.ParseStrict(input))
	loose := collect(t, pinyinparser.ParseLoose(input))
	assertEqual(t, strict, loose)
}
