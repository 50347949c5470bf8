package cmd

import (
	_ "embed"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tursodatabase/blocks/internal/flags"
	"github.com/tursodatabase/blocks/internal/settings"
)

//go:embed version.txt
var version string

var rootCmd = &cobra.Command{
	Use:     "blocks",
	Version: version,
	Short:   "Falling blocks in your terminal",
	Long:    "Blocks is a falling-block puzzle game. Run " + "`blocks play`" + " to start.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !flags.ResetConfig() {
			return nil
		}
		settings, err := settings.ReadSettings()
		if err != nil {
			return err
		}
		settings.Reset()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		settings.PersistChanges()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config-path", "", "Directory holding the settings file and the score table")
	_ = viper.BindPFlag("config-path", rootCmd.PersistentFlags().Lookup("config-path"))
	_ = rootCmd.MarkPersistentFlagDirname("config-path")
	flags.AddDebugFlag(rootCmd)
	_ = flags.AddResetConfigFlag(rootCmd)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
