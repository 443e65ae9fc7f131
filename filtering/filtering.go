package filtering

import (
	"path/filepath"
)

// IgnoredPaths lists folder/file names which json-dirtree
// should just leave out of every tree. The rc file can extend it.
var IgnoredPaths = []string{
	".git",
	".hg",
	".svn",
	".DS_Store",
	"__MACOSX",
	"._*",
	"Thumbs.db",
}

// FilterName filters out known bad folder/file names
func FilterName(name string) bool {
	for _, pattern := range IgnoredPaths {
		match, _ := filepath.Match(pattern, name)
		if match {
			return false
		}
	}

	return true
}

// Extend adds extra patterns, typically from the rc file
func Extend(patterns []string) {
	IgnoredPaths = append(IgnoredPaths, patterns...)
}
