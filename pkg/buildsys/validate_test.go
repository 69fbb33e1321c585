package buildsys

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngld/bld/pkg/bldfile"
)

func testCtx() context.Context {
	logger := zerolog.Nop()
	return WithLogger(context.Background(), &logger)
}

func writeSources(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		err := ioutil.WriteFile(filepath.Join(dir, name), []byte("int main() { return 0; }\n"), os.FileMode(0600))
		require.NoError(t, err)
	}
}

func TestValidate(t *testing.T) {
	srcDir := t.TempDir()
	writeSources(t, srcDir, "main.cpp", "util.cpp")

	job, err := Validate(testCtx(), &bldfile.Record{
		Name:       "hello",
		SourceDir:  srcDir,
		BinDir:     "out",
		FileList:   "main.cpp util.cpp",
		OptionSpec: "-Wall;-O2",
	})
	require.NoError(t, err)

	assert.Equal(t, "hello", job.Program)
	assert.Equal(t, []string{
		filepath.Join(srcDir, "main.cpp"),
		filepath.Join(srcDir, "util.cpp"),
	}, job.SourceFiles)
	assert.Equal(t, "out", job.BinDir)
	assert.Equal(t, "-Wall -O2", job.Options)
}

func TestValidateMissingFileList(t *testing.T) {
	srcDir := t.TempDir()
	writeSources(t, srcDir, "main.cpp")

	_, err := Validate(testCtx(), &bldfile.Record{
		Name:      "hello",
		SourceDir: srcDir,
		BinDir:    "out",
	})
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrMissingFileList))
	assert.Contains(t, err.Error(), "hello")
}

func TestValidateSourceDir(t *testing.T) {
	t.Run("missing src entry", func(t *testing.T) {
		_, err := Validate(testCtx(), &bldfile.Record{
			Name:     "hello",
			BinDir:   "out",
			FileList: "main.cpp",
		})
		require.Error(t, err)
		assert.True(t, eris.Is(err, ErrSourceDirNotFound))
	})

	t.Run("directory does not exist", func(t *testing.T) {
		_, err := Validate(testCtx(), &bldfile.Record{
			Name:      "hello",
			SourceDir: filepath.Join(t.TempDir(), "missing"),
			BinDir:    "out",
			FileList:  "main.cpp",
		})
		require.Error(t, err)
		assert.True(t, eris.Is(err, ErrSourceDirNotFound))
	})

	t.Run("path points to a file", func(t *testing.T) {
		dir := t.TempDir()
		writeSources(t, dir, "not-a-dir")

		_, err := Validate(testCtx(), &bldfile.Record{
			Name:      "hello",
			SourceDir: filepath.Join(dir, "not-a-dir"),
			BinDir:    "out",
			FileList:  "main.cpp",
		})
		require.Error(t, err)
		assert.True(t, eris.Is(err, ErrSourceDirNotFound))
	})
}

func TestValidateSkipsMissingFiles(t *testing.T) {
	srcDir := t.TempDir()
	writeSources(t, srcDir, "main.cpp", "util.cpp")

	job, err := Validate(testCtx(), &bldfile.Record{
		Name:      "hello",
		SourceDir: srcDir,
		BinDir:    "out",
		FileList:  "main.cpp ghost.cpp util.cpp",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(srcDir, "main.cpp"),
		filepath.Join(srcDir, "util.cpp"),
	}, job.SourceFiles)
}

func TestValidateSkipsDirectories(t *testing.T) {
	srcDir := t.TempDir()
	writeSources(t, srcDir, "main.cpp")
	require.NoError(t, os.Mkdir(filepath.Join(srcDir, "vendor"), os.FileMode(0700)))

	job, err := Validate(testCtx(), &bldfile.Record{
		Name:      "hello",
		SourceDir: srcDir,
		BinDir:    "out",
		FileList:  "vendor main.cpp",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(srcDir, "main.cpp")}, job.SourceFiles)
}

func TestValidateNoValidSources(t *testing.T) {
	srcDir := t.TempDir()

	_, err := Validate(testCtx(), &bldfile.Record{
		Name:      "hello",
		SourceDir: srcDir,
		BinDir:    "out",
		FileList:  "ghost.cpp phantom.cpp",
	})
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrNoValidSourceFiles))
}

func TestNormalizeOptions(t *testing.T) {
	assert.Equal(t, "-Wall -O2", NormalizeOptions("-Wall;-O2"))
	assert.Equal(t, "single", NormalizeOptions("single"))
	assert.Equal(t, "", NormalizeOptions(""))
	assert.Equal(t, "-a  -b", NormalizeOptions("-a;;-b"))
}
