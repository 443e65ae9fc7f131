package dirtree

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dchest/safefile"
	"github.com/pkg/errors"
)

const (
	// DirMode is the permission for created output directories
	DirMode os.FileMode = 0o755
	// FileMode is the permission for written JSON documents
	FileMode os.FileMode = 0o644
)

// Emit serializes tree into `<name>.json` inside outDir, creating
// outDir if needed. The document is two-space indented with sorted
// keys, so unchanged trees always produce byte-identical output. The
// file appears atomically: a failed emit leaves no partial document.
// Returns the path written.
func Emit(tree Tree, outDir string, name string) (string, error) {
	if err := os.MkdirAll(outDir, DirMode); err != nil {
		return "", errors.Wrap(err, "creating output directory")
	}

	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}
	data = append(data, '\n')

	destPath := filepath.Join(outDir, name+".json")
	f, err := safefile.Create(destPath, FileMode)
	if err != nil {
		return "", errors.Wrap(err, "creating output file")
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", errors.Wrap(err, "writing output file")
	}

	if err := f.Commit(); err != nil {
		return "", errors.Wrap(err, "committing output file")
	}

	return destPath, nil
}
