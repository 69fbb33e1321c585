package buildsys

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rotisserie/eris"

	"github.com/ngld/bld/pkg/bldfile"
)

// BinaryName returns the platform-specific file name for a program binary.
func BinaryName(prog string) string {
	if runtime.GOOS == "windows" {
		return prog + ".exe"
	}

	return prog
}

// Plan validates every given record and derives the ordered job sequence.
// Binary directories are created here, so each job is ready to run once it
// has been planned. The first invalid record aborts the whole plan.
func Plan(ctx context.Context, recs []*bldfile.Record) ([]*Job, error) {
	jobs := make([]*Job, 0, len(recs))
	for _, rec := range recs {
		job, err := Validate(ctx, rec)
		if err != nil {
			return nil, err
		}

		if job.BinDir == "" {
			return nil, eris.Wrapf(ErrBinDirCreate, "program %s has no bin entry", job.Program)
		}

		if err := os.MkdirAll(job.BinDir, os.FileMode(0770)); err != nil {
			return nil, eris.Wrapf(ErrBinDirCreate, "program %s: %s (%v)", job.Program, job.BinDir, err)
		}

		job.OutputPath = filepath.Join(job.BinDir, BinaryName(job.Program))
		jobs = append(jobs, job)
	}

	return jobs, nil
}
