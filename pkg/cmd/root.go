// Package cmd implements the bld command line interface.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ngld/bld/pkg/bldfile"
	"github.com/ngld/bld/pkg/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "bld [program...]",
	Short: "Minimal build orchestrator for C++ programs",
	Long: `bld reads the build description file (Bldfile by default), turns every
declared program into a compile job and runs the system compiler once per
program, in declaration order. Called without a subcommand it behaves
exactly like "bld build".`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "", "path to the build description file (defaults to Bldfile)")
	addBuildFlags(rootCmd)
}

// Execute runs the command tree with the given context and configuration
// and returns the first error. The caller decides how to report it.
func Execute(ctx context.Context, conf *config.Config) error {
	cfg = conf
	return rootCmd.ExecuteContext(ctx)
}

// stringFlag returns the flag value if it was set on the command line and
// the config fallback otherwise.
func stringFlag(cmd *cobra.Command, name, fallback string) (string, error) {
	if cmd.Flags().Changed(name) {
		return cmd.Flags().GetString(name)
	}

	return fallback, nil
}

func boolFlag(cmd *cobra.Command, name string, fallback bool) (bool, error) {
	if cmd.Flags().Changed(name) {
		return cmd.Flags().GetBool(name)
	}

	return fallback, nil
}

func bldfilePath(cmd *cobra.Command) (string, error) {
	path, err := stringFlag(cmd, "file", cfg.File)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = bldfile.DefaultName
	}

	return path, nil
}
