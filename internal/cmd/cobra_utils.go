package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tursodatabase/blocks/internal/settings"
)

func noFilesArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{}, cobra.ShellCompDirectiveNoFileComp
}

func settingsKeysArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}
	return settings.Keys, cobra.ShellCompDirectiveNoFileComp
}
