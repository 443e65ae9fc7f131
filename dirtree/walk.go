package dirtree

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// WalkOpts configures a Walk.
type WalkOpts struct {
	// Hidden includes dot-prefixed entries
	Hidden bool

	// Contents binds file leaves to their contents instead of null
	Contents bool

	// Dereference follows symlinks instead of skipping them.
	// There is no cycle detection: a symlink loop will walk until
	// the OS path length limit errors out.
	Dereference bool

	// Filter rejects entry names; nil keeps every entry, so the
	// tree mirrors the filesystem exactly
	Filter func(name string) bool
}

func (opts *WalkOpts) filter(name string) bool {
	if opts.Filter != nil {
		return opts.Filter(name)
	}
	return true
}

// Walk builds a Tree mirroring the filesystem subtree rooted at root.
// A missing or unreadable directory anywhere under root fails the
// whole walk; callers decide whether that skips the root or the run.
func Walk(root string, opts *WalkOpts) (Tree, *Stats, error) {
	if opts == nil {
		opts = &WalkOpts{}
	}

	stats := &Stats{}
	tree, err := walk(root, opts, stats)
	if err != nil {
		return nil, nil, err
	}
	return tree, stats, nil
}

func walk(dir string, opts *WalkOpts, stats *Stats) (Tree, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "listing directory")
	}

	tree := make(Tree)
	for _, entry := range entries {
		name := entry.Name()
		if !opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}
		if !opts.filter(name) {
			continue
		}

		fullPath := filepath.Join(dir, name)

		entryType := entry.Type()
		if entryType&os.ModeSymlink != 0 {
			if !opts.Dereference {
				continue
			}
			info, err := os.Stat(fullPath)
			if err != nil {
				if os.IsNotExist(err) {
					// dangling symlink, nothing to mirror
					continue
				}
				return nil, errors.Wrapf(err, "dereferencing %s", fullPath)
			}
			entryType = info.Mode().Type()
		}

		switch {
		case entryType.IsDir():
			sub, err := walk(fullPath, opts, stats)
			if err != nil {
				return nil, err
			}
			stats.Dirs++
			tree[name] = sub
		case entryType.IsRegular():
			stats.Files++
			if opts.Contents {
				data, err := os.ReadFile(fullPath)
				if err != nil {
					return nil, errors.Wrapf(err, "reading %s", fullPath)
				}
				stats.Size += int64(len(data))
				tree[name] = string(data)
			} else {
				if info, err := os.Stat(fullPath); err == nil {
					stats.Size += info.Size()
				}
				tree[name] = nil
			}
		default:
			// only files and directories are handled
		}
	}

	return tree, nil
}
