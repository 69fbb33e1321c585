package buildsys

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/rotisserie/eris"
	"mvdan.cc/sh/v3/shell"
)

// CommandLine builds the argv for one job. The option string stays a single
// trailing argument unless splitOptions is set, in which case it's split
// into fields with shell quoting rules.
func CommandLine(compiler string, job *Job, splitOptions bool) ([]string, error) {
	argv := make([]string, 0, len(job.SourceFiles)+5)
	argv = append(argv, compiler)
	argv = append(argv, job.SourceFiles...)
	argv = append(argv, "-g", "-o", job.OutputPath)

	if job.Options == "" {
		return argv, nil
	}

	if !splitOptions {
		return append(argv, job.Options), nil
	}

	fields, err := shell.Fields(job.Options, nil)
	if err != nil {
		return nil, eris.Wrapf(err, "program %s: failed to split options %q", job.Program, job.Options)
	}

	return append(argv, fields...), nil
}

// Invoke runs the compiler for a single job. The compiler inherits our
// stdout and stderr, so warnings and errors appear exactly where the user
// expects them.
func Invoke(ctx context.Context, compiler string, job *Job, opts RunOptions) error {
	argv, err := CommandLine(compiler, job, opts.SplitOptions)
	if err != nil {
		return err
	}

	log(ctx).Info().
		Str("prog", job.Program).
		Msgf("Compiling %s", job.OutputPath)
	log(ctx).Info().
		Str("prog", job.Program).
		Bool("command", true).
		Msg(strings.Join(argv, " "))

	if opts.DryRun {
		return nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return eris.Wrapf(ErrCompileFailed, "%s (%v)", job.OutputPath, err)
	}

	log(ctx).Info().
		Str("prog", job.Program).
		Msgf("Binary created at %s", job.OutputPath)
	return nil
}

// Run executes the given jobs in order with the resolved compiler. The
// first failure aborts the run; with KeepGoing set, failed compiles are
// logged, the remaining programs still build and the first failure is
// returned at the end.
func Run(ctx context.Context, compiler string, jobs []*Job, opts RunOptions) error {
	var firstErr error
	for _, job := range jobs {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := Invoke(ctx, compiler, job, opts)
		if err == nil {
			continue
		}

		if !opts.KeepGoing || !eris.Is(err, ErrCompileFailed) {
			return err
		}

		log(ctx).Error().
			Str("prog", job.Program).
			Msg(eris.ToString(err, false))

		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
