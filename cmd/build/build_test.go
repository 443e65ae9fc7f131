package build

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/lukassup/json-dirtree/cli"
	"github.com/lukassup/json-dirtree/comm"
	"github.com/lukassup/json-dirtree/conf"
	"github.com/lukassup/json-dirtree/filtering"
)

func TestMain(m *testing.M) {
	comm.Configure(true, false, false, false)
	os.Exit(m.Run())
}

func testContext() *cli.Context {
	return cli.NewContext(kingpin.New("json-dirtree", "test"))
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func writeFile(t *testing.T, path string, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func Test_Do_DefaultDirs(t *testing.T) {
	base := t.TempDir()
	chdir(t, base)

	writeFile(t, filepath.Join("src", "a", "x.txt"), "")
	writeFile(t, filepath.Join("src", "a", "b", "y.txt"), "")
	require.NoError(t, os.MkdirAll(filepath.Join("src", "empty"), 0o755))

	require.NoError(t, Do(testContext(), Params{}))

	data, err := os.ReadFile("a.json")
	require.NoError(t, err)
	assert.Equal(t, `{
  "b": {
    "y.txt": null
  },
  "x.txt": null
}
`, string(data))

	empty, err := os.ReadFile("empty.json")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(empty))

	// unchanged tree, unchanged bytes
	require.NoError(t, Do(testContext(), Params{}))
	again, err := os.ReadFile("a.json")
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func Test_Do_OutDir(t *testing.T) {
	base := t.TempDir()
	chdir(t, base)
	writeFile(t, filepath.Join("stuff", "x.txt"), "")

	outDir := filepath.Join(base, "out", "deep")
	require.NoError(t, Do(testContext(), Params{
		Dirs:   []string{"stuff"},
		OutDir: outDir,
	}))

	_, err := os.Stat(filepath.Join(outDir, "stuff.json"))
	assert.NoError(t, err)
}

func Test_Do_NoSourceDirs(t *testing.T) {
	chdir(t, t.TempDir())

	err := Do(testContext(), Params{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no source directories")
}

func Test_Do_FailedRootSkipped(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits don't translate on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores permission bits")
	}

	base := t.TempDir()
	chdir(t, base)
	writeFile(t, filepath.Join("good", "x.txt"), "")
	require.NoError(t, os.MkdirAll("bad", 0o755))
	writeFile(t, filepath.Join("bad", "y.txt"), "")
	require.NoError(t, os.Chmod("bad", 0o000))
	t.Cleanup(func() { os.Chmod("bad", 0o755) })

	err := Do(testContext(), Params{Dirs: []string{"bad", "good"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process 1 of 2 directories")
	assert.Contains(t, err.Error(), "bad")

	// the good root was still processed
	_, statErr := os.Stat("good.json")
	assert.NoError(t, statErr)

	// no partial output for the bad root
	_, statErr = os.Stat("bad.json")
	assert.True(t, os.IsNotExist(statErr))
}

func Test_Do_RcFile(t *testing.T) {
	oldPatterns := append([]string(nil), filtering.IgnoredPaths...)
	t.Cleanup(func() { filtering.IgnoredPaths = oldPatterns })

	base := t.TempDir()
	chdir(t, base)

	writeFile(t, conf.Name, `
out_dir = "trees"
hidden = true
ignore = ["*.log"]
`)
	writeFile(t, filepath.Join("proj", "keep.txt"), "")
	writeFile(t, filepath.Join("proj", ".env"), "")
	writeFile(t, filepath.Join("proj", "debug.log"), "")

	require.NoError(t, Do(testContext(), Params{Dirs: []string{"proj"}}))

	data, err := os.ReadFile(filepath.Join("trees", "proj.json"))
	require.NoError(t, err)
	assert.Equal(t, `{
  ".env": null,
  "keep.txt": null
}
`, string(data))
}

func Test_Do_JunkNamesMirroredByDefault(t *testing.T) {
	base := t.TempDir()
	chdir(t, base)
	writeFile(t, filepath.Join("proj", "Thumbs.db"), "")
	writeFile(t, filepath.Join("proj", "kept.txt"), "")

	require.NoError(t, Do(testContext(), Params{Dirs: []string{"proj"}}))

	data, err := os.ReadFile("proj.json")
	require.NoError(t, err)
	assert.Equal(t, `{
  "Thumbs.db": null,
  "kept.txt": null
}
`, string(data))
}

func Test_Do_FilterFlag(t *testing.T) {
	base := t.TempDir()
	chdir(t, base)
	writeFile(t, filepath.Join("proj", "Thumbs.db"), "")
	writeFile(t, filepath.Join("proj", "kept.txt"), "")

	require.NoError(t, Do(testContext(), Params{
		Dirs:   []string{"proj"},
		Filter: true,
	}))

	data, err := os.ReadFile("proj.json")
	require.NoError(t, err)
	assert.Equal(t, `{
  "kept.txt": null
}
`, string(data))
}

func Test_Do_Contents(t *testing.T) {
	base := t.TempDir()
	chdir(t, base)
	writeFile(t, filepath.Join("proj", "greeting.txt"), "hello")

	require.NoError(t, Do(testContext(), Params{
		Dirs:     []string{"proj"},
		Contents: true,
	}))

	data, err := os.ReadFile("proj.json")
	require.NoError(t, err)
	assert.Equal(t, `{
  "greeting.txt": "hello"
}
`, string(data))
}
