// Package toolchain locates a usable system compiler for the running
// platform family.
package toolchain

import (
	"os/exec"
	"runtime"

	"github.com/rotisserie/eris"
)

// ErrNoCompilerFound is returned when no known compiler resolves on the PATH.
var ErrNoCompilerFound = eris.New("no suitable C++ compiler found")

// Detect probes the PATH for a compiler appropriate to the current platform
// family. Windows tries g++ first and falls back to cl, returning the
// resolved path; every other platform requires g++ and returns the bare name
// so the spawned process resolves it again itself.
func Detect() (string, error) {
	if runtime.GOOS == "windows" {
		if path, err := exec.LookPath("g++"); err == nil {
			return path, nil
		}
		if path, err := exec.LookPath("cl"); err == nil {
			return path, nil
		}

		return "", eris.Wrap(ErrNoCompilerFound, "probed g++ and cl")
	}

	if _, err := exec.LookPath("g++"); err != nil {
		return "", eris.Wrap(ErrNoCompilerFound, "probed g++")
	}

	return "g++", nil
}

// Resolve returns the compiler executable for this run. A non-empty override
// skips platform detection but still has to resolve to an executable, either
// through the PATH or as a direct file path.
func Resolve(override string) (string, error) {
	if override == "" {
		return Detect()
	}

	path, err := exec.LookPath(override)
	if err != nil {
		return "", eris.Wrapf(ErrNoCompilerFound, "%s", override)
	}

	return path, nil
}
