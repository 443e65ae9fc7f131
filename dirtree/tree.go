// Package dirtree builds JSON-shaped trees mirroring filesystem
// hierarchies: directories become nested objects, files become null
// leaves (or their contents, in contents mode).
package dirtree

// Tree mirrors one directory listing. Keys are entry names; a nested
// Tree value is a subdirectory, a nil value is a file leaf (JSON null)
// and a string value holds file contents when contents mode is on.
type Tree map[string]interface{}

// Stats counts what a walk saw.
type Stats struct {
	Dirs  int
	Files int
	Size  int64
}
