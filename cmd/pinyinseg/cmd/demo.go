package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/pinyinseg/internal/roundtrip"
)

var demoCmd = &cobra.Command{
	Use:   "demo <hanzi>",
	Short: "Convert Hanzi to pinyin and segment the result",
	Long: `demo converts a Chinese character string to toned pinyin with
go-pinyin, then runs that pinyin through the segmentation engine, printing
both the intermediate romanization and the resulting syllables.

Example:
  pinyinseg demo 今天天气不错`,
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	hanzi := args[0]
	romanized := roundtrip.Convert(hanzi)

	fmt.Printf("hanzi:   %s\n", hanzi)
	fmt.Printf("pinyin:  %s\n", romanized)
	fmt.Println("syllables:")

	settings := loadSettings()
	it := settings.Parser().PreserveSpaces(true).Parse(romanized)
	return printAll(it)
}
