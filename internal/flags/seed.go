package flags

import (
	"github.com/spf13/cobra"
)

var seedFlag int64

// AddSeed registers --seed. Zero means a time based seed.
func AddSeed(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "Seed for the piece sequence. Zero picks one from the clock.")
}

func Seed() int64 {
	return seedFlag
}
