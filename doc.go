// Package pinyinparser segments a string of Hanyu Pinyin — the
// romanization of Mandarin Chinese — into its constituent syllables.
//
// Given arbitrary input containing pinyin, optional diacritic tone marks,
// apostrophes, punctuation, spaces and non-pinyin text, it yields a lazy
// sequence of syllable tokens normalized to canonical NFC form:
//
//	for it := pinyinparser.ParseStrict("jīntiān"); ; {
//		s, ok, err := it.Next()
//		if err != nil || !ok {
//			break
//		}
//		fmt.Println(s) // "jīn", then "tiān"
//	}
//
// The package is purely syntactic over pinyin orthography: it does not
// consult a dictionary, score ambiguous readings, or convert numeric tone
// digits (e.g. "ni3").
package pinyinparser
