// Package cmd contains all CLI commands for the pinyinseg tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/pinyinseg/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pinyinseg",
	Short: "Segment Hanyu Pinyin text into syllables",
	Long: `pinyinseg segments strings of Hanyu Pinyin romanization into their
constituent syllables: jintian becomes jin, tian.

Running 'pinyinseg' without a subcommand launches the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/pinyinseg)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(tuiCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", filepath.Join(home, ".config", "pinyinseg"))
	}

	viper.SetEnvPrefix("PINYINSEG")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings loads the CLI's default parser settings, falling back to
// config.Default when the settings file is absent.
func loadSettings() config.Settings {
	settings, err := config.Load(getConfigDir())
	if err != nil {
		return config.Default()
	}
	return settings
}
