package cmd

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/ngld/bld/pkg/bldfile"
	"github.com/ngld/bld/pkg/buildsys"
	"github.com/ngld/bld/pkg/toolchain"
)

var buildCmd = &cobra.Command{
	Use:   "build [program...]",
	Short: "Compile the declared programs",
	Long: `Parses the build description file, validates every program in the run and
compiles them in declaration order. Validation covers the whole run before
the first compiler call, so one broken entry stops the run before anything
is built. Pass program names to narrow the run to those programs.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addBuildFlags(buildCmd)
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("dry", "n", false, "dry run; only print the compile commands, don't execute anything")
	cmd.Flags().BoolP("keep-going", "k", false, "keep building the remaining programs after a failed compile")
	cmd.Flags().Bool("split-options", false, "pass option tokens as separate compiler arguments")
	cmd.Flags().String("compiler", "", "compiler executable to use instead of platform detection")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	path, err := bldfilePath(cmd)
	if err != nil {
		return err
	}

	buildsys.PrintTask("Loading " + path)
	list, err := bldfile.Parse(path)
	if err != nil {
		return err
	}

	recs := list.Records
	if len(args) > 0 {
		recs, err = selectRecords(list, args)
		if err != nil {
			return err
		}
	}

	if len(recs) == 0 {
		buildsys.PrintSubtask("Nothing to build")
		return nil
	}

	override, err := stringFlag(cmd, "compiler", cfg.Compiler)
	if err != nil {
		return err
	}

	compiler, err := toolchain.Resolve(override)
	if err != nil {
		return err
	}
	buildsys.PrintSubtask("Using compiler " + compiler)

	jobs, err := buildsys.Plan(ctx, recs)
	if err != nil {
		return err
	}

	opts := buildsys.RunOptions{}
	opts.DryRun, err = cmd.Flags().GetBool("dry")
	if err != nil {
		return err
	}

	opts.KeepGoing, err = boolFlag(cmd, "keep-going", cfg.KeepGoing)
	if err != nil {
		return err
	}

	opts.SplitOptions, err = boolFlag(cmd, "split-options", cfg.SplitOptions)
	if err != nil {
		return err
	}

	buildsys.PrintTask(fmt.Sprintf("Building %d program(s)", len(jobs)))
	if err := buildsys.Run(ctx, compiler, jobs, opts); err != nil {
		return err
	}

	buildsys.PrintTask("Done")
	return nil
}

// selectRecords narrows the parsed records to the named programs while
// keeping their declaration order.
func selectRecords(list *bldfile.List, names []string) ([]*bldfile.Record, error) {
	for _, name := range names {
		if _, ok := list.ByName[name]; !ok {
			return nil, eris.Errorf("Program %s is not declared in the build file", name)
		}
	}

	selected := make([]*bldfile.Record, 0, len(names))
	for _, rec := range list.Records {
		for _, name := range names {
			if rec.Name == name {
				selected = append(selected, rec)
				break
			}
		}
	}

	return selected, nil
}
