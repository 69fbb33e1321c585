package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is reported by the version subcommand. Overridden at build time
// through -ldflags "-X github.com/ngld/bld/pkg/cmd.Version=...".
var Version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bld version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bld " + Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
