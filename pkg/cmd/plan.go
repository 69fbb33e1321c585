package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ngld/bld/pkg/bldfile"
	"github.com/ngld/bld/pkg/buildsys"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the resolved compile jobs without running the compiler",
	Long: `Parses and validates the build description file and prints the resulting
job sequence. Binary directories are created as part of planning, but no
compiler runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := bldfilePath(cmd)
		if err != nil {
			return err
		}

		list, err := bldfile.Parse(path)
		if err != nil {
			return err
		}

		jobs, err := buildsys.Plan(cmd.Context(), list.Records)
		if err != nil {
			return err
		}

		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		switch format {
		case "text":
			maxNameLen := 0
			for _, job := range jobs {
				if len(job.Program) > maxNameLen {
					maxNameLen = len(job.Program)
				}
			}

			lineFmt := fmt.Sprintf(" * %%-%ds %%d file(s) -> %%s\n", maxNameLen+3)
			for _, job := range jobs {
				fmt.Printf(lineFmt, job.Program+":", len(job.SourceFiles), job.OutputPath)
			}
		case "yaml":
			data, err := yaml.Marshal(jobs)
			if err != nil {
				return eris.Wrap(err, "Failed to serialize the plan")
			}

			fmt.Print(string(data))
		case "json":
			data, err := json.MarshalIndent(jobs, "", "  ")
			if err != nil {
				return eris.Wrap(err, "Failed to serialize the plan")
			}

			fmt.Println(string(data))
		default:
			return eris.Errorf("Unknown format %s (expected text, yaml or json)", format)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().String("format", "text", "output format (text, yaml or json)")
}
