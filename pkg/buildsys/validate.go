package buildsys

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/ngld/bld/pkg/bldfile"
)

// Validate checks a single program record and turns it into a compile job.
// Listed files that don't exist in the source directory are skipped with a
// warning; they only become an error if nothing is left.
func Validate(ctx context.Context, rec *bldfile.Record) (*Job, error) {
	if rec.FileList == "" {
		return nil, eris.Wrapf(ErrMissingFileList, "program %s", rec.Name)
	}

	if rec.SourceDir == "" {
		return nil, eris.Wrapf(ErrSourceDirNotFound, "program %s has no src entry", rec.Name)
	}

	info, err := os.Stat(rec.SourceDir)
	if err != nil || !info.IsDir() {
		return nil, eris.Wrapf(ErrSourceDirNotFound, "program %s: %s", rec.Name, rec.SourceDir)
	}

	names := strings.Fields(rec.FileList)
	sources := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(rec.SourceDir, name)
		item, err := os.Stat(path)
		if err != nil || item.IsDir() {
			log(ctx).Warn().
				Str("prog", rec.Name).
				Msgf("Source file %s not found, skipping", path)
			continue
		}

		sources = append(sources, path)
	}

	if len(sources) == 0 {
		return nil, eris.Wrapf(ErrNoValidSourceFiles, "program %s: %s", rec.Name, rec.SourceDir)
	}

	return &Job{
		Program:     rec.Name,
		SourceFiles: sources,
		BinDir:      rec.BinDir,
		Options:     NormalizeOptions(rec.OptionSpec),
	}, nil
}

// NormalizeOptions rewrites the semicolon-separated option list into the
// space-joined string the compiler receives. Empty items between semicolons
// turn into extra spaces; the result is passed through verbatim.
func NormalizeOptions(spec string) string {
	return strings.Join(strings.Split(spec, ";"), " ")
}
