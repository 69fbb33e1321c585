// Package bldfile parses build description files. The format is line
// oriented: each line holds a single key=value pair, a prog= line opens a
// program scope and the src=, bin=, file= and option= lines that follow are
// attributed to it. Blank lines and lines starting with # are skipped.
package bldfile

import (
	"bufio"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// DefaultName is the build description file used when no path is given.
const DefaultName = "Bldfile"

var (
	// ErrNotFound is returned when the build description file does not exist.
	ErrNotFound = eris.New("build description file not found")

	// ErrRead is returned when the build description file cannot be read.
	ErrRead = eris.New("failed to read build description file")

	// ErrFieldBeforeProg is returned when a src=, bin=, file= or option=
	// line appears before the first prog= line ever opened a program scope.
	ErrFieldBeforeProg = eris.New("field declared before any prog entry")
)

// Parse reads the build description file at path and returns the declared
// program records in declaration order.
func Parse(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		if eris.Is(err, os.ErrNotExist) {
			return nil, eris.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, eris.Wrapf(ErrRead, "%s: %v", path, err)
	}
	defer f.Close()

	list := NewList()
	var current *Record

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pos := strings.Index(line, "=")
		if pos < 0 {
			// Lines without an assignment carry no meaning in this format.
			continue
		}

		// Only the first = separates key and value; later ones belong to
		// the value. The key is not trimmed: "src =x" is an unrecognized
		// key, not a sloppy src entry.
		key, value := line[:pos], line[pos+1:]

		switch key {
		case "prog":
			if value == "" {
				return nil, eris.Errorf("%s:%d: prog entry with an empty program name", path, lineNo)
			}
			current = list.open(value)
		case "src", "bin", "file", "option":
			if current == nil {
				return nil, eris.Wrapf(ErrFieldBeforeProg, "%s:%d: %s", path, lineNo, line)
			}
			switch key {
			case "src":
				current.SourceDir = value
			case "bin":
				current.BinDir = value
			case "file":
				current.FileList = value
			case "option":
				current.OptionSpec = value
			}
		default:
			// Unrecognized keys are ignored.
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, eris.Wrapf(ErrRead, "%s: %v", path, err)
	}

	return list, nil
}
