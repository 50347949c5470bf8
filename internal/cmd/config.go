package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tursodatabase/blocks/internal/settings"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage your game configuration",
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Set a configuration value",
	Long:              "Set a configuration value. Keys: " + strings.Join(settings.Keys, ", "),
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: settingsKeysArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		settings, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		if err := settings.Set(args[0], args[1]); err != nil {
			return err
		}
		value, _ := settings.Get(args[0])
		fmt.Println(args[0], "is now", emph(value))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Show configuration values",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: settingsKeysArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		keys := settings.Keys
		settings, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		if len(args) == 1 {
			value, err := settings.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		}

		data := make([][]string, 0, len(keys))
		for _, key := range keys {
			value, _ := settings.Get(key)
			data = append(data, []string{key, value})
		}
		printTable([]string{"Key", "Value"}, data)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:               "path",
	Short:             "Show the directory holding the settings and scores",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		settings, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		fmt.Println(settings.Path())
		return nil
	},
}
