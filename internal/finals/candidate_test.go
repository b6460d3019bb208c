package finals

import (
	"testing"

	"golang.org/x/text/unicode/norm"

	"github.com/f3rmion/pinyinseg/internal/token"
)

func letter(base token.Base, diacritics ...token.Diacritic) token.Atom {
	return token.Atom{Kind: token.KindLetter, Base: base, Diacritics: diacritics}
}

func TestGenerateSingleToneVowel(t *testing.T) {
	atoms := []token.Atom{letter(token.A, token.Macron)}
	got := Generate(atoms, 0, false)
	if len(got) != 1 || got[0].Final != A || got[0].Tone != First {
		t.Fatalf("got %+v, want a single A/First candidate", got)
	}
}

func TestGenerateAngViaBareNasalDigraph(t *testing.T) {
	atoms := []token.Atom{letter(token.A, token.Macron), letter(token.Ŋ)}
	got := Generate(atoms, 0, false)
	found := false
	for _, c := range got {
		if c.Final == Ang && c.UsesNasalDigraph {
			found = true
			if c.Span() != 2 {
				t.Fatalf("nasal digraph Ang should span 2 atoms, got %d", c.Span())
			}
		}
	}
	if !found {
		t.Fatalf("expected an Ang candidate via bare ŋ, got %+v", got)
	}
}

func TestGenerateAngViaSpelledNasal(t *testing.T) {
	atoms := []token.Atom{letter(token.A, token.Macron), letter(token.N), letter(token.G)}
	got := Generate(atoms, 0, false)
	found := false
	for _, c := range got {
		if c.Final == Ang && !c.UsesNasalDigraph {
			found = true
			if c.Span() != 3 {
				t.Fatalf("spelled-out Ang should span 3 atoms, got %d", c.Span())
			}
		}
	}
	if !found {
		t.Fatalf("expected an Ang candidate via ng, got %+v", got)
	}
}

func TestGenerateBreveRejectedInStrictMode(t *testing.T) {
	atoms := []token.Atom{letter(token.A, token.Breve)}
	if got := Generate(atoms, 0, true); len(got) != 0 {
		t.Fatalf("strict mode should reject Breve, got %+v", got)
	}
	if got := Generate(atoms, 0, false); len(got) == 0 || got[0].Tone != Third {
		t.Fatalf("loose mode should repair Breve to Third, got %+v", got)
	}
}

func TestGenerateUmlautFinal(t *testing.T) {
	atoms := []token.Atom{letter(token.U, token.Umlaut, token.Acute)}
	got := Generate(atoms, 0, false)
	if len(got) != 1 || got[0].Final != Ü || got[0].Tone != Second {
		t.Fatalf("got %+v, want a single Ü/Second candidate", got)
	}
}

func TestGenerateUanFromUmlautOnset(t *testing.T) {
	atoms := []token.Atom{
		letter(token.U, token.Umlaut),
		letter(token.A, token.Macron),
		letter(token.N),
	}
	got := Generate(atoms, 0, false)
	found := false
	for _, c := range got {
		if c.Final == Üan && c.Tone == First {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Üan/First candidate, got %+v", got)
	}
}

func TestSpellPlacesToneOnConventionalVowel(t *testing.T) {
	composed := norm.NFC.String(Spell(Iong, First))
	want := norm.NFC.String("io" + string(First.Combiner()) + "ng")
	if composed != want {
		t.Fatalf("got %q, want %q", composed, want)
	}
}

func TestCandidateSpanAccountsForNasalDigraph(t *testing.T) {
	c := Candidate{Final: Ong, UsesNasalDigraph: true}
	if c.Span() != 2 {
		t.Fatalf("got %d, want 2", c.Span())
	}
	c.UsesNasalDigraph = false
	if c.Span() != 3 {
		t.Fatalf("got %d, want 3", c.Span())
	}
}
