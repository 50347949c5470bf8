package flags

import (
	"github.com/spf13/cobra"
)

var resetConfig bool

// AddResetConfigFlag registers the hidden --reset-config, which restores the
// default settings and clears the last game summary before running a command.
func AddResetConfigFlag(cmd *cobra.Command) error {
	cmd.PersistentFlags().BoolVar(&resetConfig, "reset-config", false, "restore default settings")
	return cmd.PersistentFlags().MarkHidden("reset-config")
}

func ResetConfig() bool {
	return resetConfig
}
