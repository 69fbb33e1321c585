package buildsys

import "github.com/rotisserie/eris"

var (
	// ErrMissingFileList is returned for a program without a file entry.
	ErrMissingFileList = eris.New("no source files listed")
	// ErrSourceDirNotFound is returned when the src entry is missing or does
	// not point to a directory.
	ErrSourceDirNotFound = eris.New("source directory not found")
	// ErrNoValidSourceFiles is returned when every listed file is missing
	// from the source directory.
	ErrNoValidSourceFiles = eris.New("no valid source files found")
	// ErrBinDirCreate is returned when the binary directory is missing from
	// the record or can't be created.
	ErrBinDirCreate = eris.New("failed to create binary directory")
	// ErrCompileFailed is returned when the compiler exits with an error.
	ErrCompileFailed = eris.New("compilation failed")
)
