package cli

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// SourceDirs returns the default roots for commands invoked without
// dirs: the directories found under ./src/. A missing ./src/ yields an
// empty set, not an error; only files and symlinks are left out since
// they can never be walked as roots.
func SourceDirs() ([]string, error) {
	entries, err := os.ReadDir("src")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "listing ./src")
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join("src", entry.Name()))
		}
	}
	return dirs, nil
}
