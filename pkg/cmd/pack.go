package cmd

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/ulikunitz/xz"

	"github.com/ngld/bld/pkg/bldfile"
	"github.com/ngld/bld/pkg/buildsys"
)

var packCmd = &cobra.Command{
	Use:   "pack [archive_name]",
	Short: "Bundles the built binaries into a .tar.xz archive",
	Long: `Collects the binary of every declared program and packs them into a
compressed tar archive (bld-bin.tar.xz unless another name is passed).
Programs that haven't been built yet cause an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return eris.New("Expected at most 1 argument!")
		}

		archiveName := "bld-bin.tar.xz"
		if len(args) == 1 {
			archiveName = args[0]
		}

		path, err := bldfilePath(cmd)
		if err != nil {
			return err
		}

		list, err := bldfile.Parse(path)
		if err != nil {
			return err
		}

		if len(list.Records) == 0 {
			return eris.New("Nothing to pack; the build file declares no programs")
		}

		jobs, err := buildsys.Plan(cmd.Context(), list.Records)
		if err != nil {
			return err
		}

		totalSize := int64(0)
		infos := make([]os.FileInfo, len(jobs))
		for idx, job := range jobs {
			info, err := os.Stat(job.OutputPath)
			if err != nil {
				return eris.Wrapf(err, "Missing binary for program %s; run bld build first", job.Program)
			}

			infos[idx] = info
			totalSize += info.Size()
		}

		buildsys.PrintTask("Packing " + archiveName)
		archive, err := os.Create(archiveName)
		if err != nil {
			return eris.Wrapf(err, "Failed to create %s", archiveName)
		}
		defer archive.Close()

		xzWriter, err := xz.NewWriter(archive)
		if err != nil {
			return eris.Wrapf(err, "Failed to prepare xz compression for %s", archiveName)
		}

		tarWriter := tar.NewWriter(xzWriter)
		bar := getProgressBar(totalSize, "         pack")
		buf := make([]byte, 4096)
		for idx, job := range jobs {
			header, err := tar.FileInfoHeader(infos[idx], "")
			if err != nil {
				return eris.Wrapf(err, "Failed to build the archive header for %s", job.OutputPath)
			}
			header.Name = filepath.Base(job.OutputPath)

			err = tarWriter.WriteHeader(header)
			if err != nil {
				return eris.Wrapf(err, "Failed to write the archive header for %s", job.OutputPath)
			}

			binary, err := os.Open(job.OutputPath)
			if err != nil {
				return eris.Wrapf(err, "Failed to open %s", job.OutputPath)
			}

			for {
				n, err := binary.Read(buf)
				if err != nil && n < 1 {
					if err == io.EOF {
						break
					}

					binary.Close()
					return eris.Wrapf(err, "Failed to read %s", job.OutputPath)
				}

				_, err = tarWriter.Write(buf[:n])
				if err != nil {
					binary.Close()
					return eris.Wrapf(err, "Failed to pack %s", job.OutputPath)
				}

				bar.Write(buf[:n])
			}

			binary.Close()
			buildsys.PrintSubtask(header.Name)
		}

		bar.Finish()
		err = tarWriter.Close()
		if err != nil {
			return eris.Wrapf(err, "Failed to finish %s", archiveName)
		}

		err = xzWriter.Close()
		if err != nil {
			return eris.Wrapf(err, "Failed to finish %s", archiveName)
		}

		buildsys.PrintTask("Done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
}

func getProgressBar(length int64, desc string) *progressbar.ProgressBar {
	if os.Getenv("CI") == "true" {
		return progressbar.NewOptions64(length, progressbar.OptionSetVisibility(false))
	}

	return progressbar.DefaultBytes(length, desc)
}
