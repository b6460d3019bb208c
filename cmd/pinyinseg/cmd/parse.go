package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/pinyinseg"
)

var (
	parseStrict      bool
	parseLoose       bool
	parseSplitErhua  bool
	parsePreserveAll bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Segment pinyin text into syllables",
	Long: `parse segments a string of Hanyu Pinyin into its constituent
syllables, one per line.

Example:
  pinyinseg parse jintian
  pinyinseg parse --strict "Nǐ xiǎng qù nǎli?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "reject confusables, breve tones, and misplaced apostrophes")
	parseCmd.Flags().BoolVar(&parseLoose, "loose", false, "silently repair confusables and malformed tone marks (default)")
	parseCmd.Flags().BoolVar(&parseSplitErhua, "split-erhua", false, "split the rhotic r suffix into its own token")
	parseCmd.Flags().BoolVar(&parsePreserveAll, "preserve-all", false, "echo spaces, punctuation, and other non-pinyin text")
}

func runParse(cmd *cobra.Command, args []string) error {
	settings := loadSettings()
	parser := settings.Parser()

	if parseStrict {
		parser = parser.WithStrictness(pinyinparser.Strict)
	} else if parseLoose {
		parser = parser.WithStrictness(pinyinparser.Loose)
	}
	if parsePreserveAll {
		parser = parser.
			PreserveSpaces(true).
			PreservePunctuations(true).
			PreserveMiscellaneous(true)
	}

	input := strings.Join(args, " ")
	it := parser.Parse(input)

	if parseSplitErhua {
		return printAll(pinyinparser.SplitErhua(it))
	}
	return printAll(it)
}

// syllableSource is satisfied by both *pinyinparser.Iterator and
// *pinyinparser.ErhuaSplitter.
type syllableSource interface {
	Next() (string, bool, error)
}

func printAll(src syllableSource) error {
	for {
		s, ok, err := src.Next()
		if err != nil {
			return fmt.Errorf("segmenting input: %w", err)
		}
		if !ok {
			return nil
		}
		fmt.Println(s)
	}
}
