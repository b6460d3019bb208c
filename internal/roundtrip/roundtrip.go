// Package roundtrip converts Hanzi to toned pinyin using go-pinyin, producing
// the input the demo command feeds through the segmentation engine. It is
// not a lexicon the segmenter itself consults: the engine never imports this
// package.
package roundtrip

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// ToneArgs is the go-pinyin configuration used throughout this package:
// diacritic tone marks, first reading only.
func ToneArgs() pinyin.Args {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone
	args.Heteronym = false
	return args
}

// Convert renders hanzi as a space-separated string of toned pinyin
// syllables, suitable as input to pinyinparser.Parser.Parse.
func Convert(hanzi string) string {
	args := ToneArgs()
	readings := pinyin.Pinyin(hanzi, args)

	syllables := make([]string, 0, len(readings))
	for _, r := range readings {
		if len(r) == 0 {
			continue
		}
		syllables = append(syllables, r[0])
	}
	return strings.Join(syllables, " ")
}
