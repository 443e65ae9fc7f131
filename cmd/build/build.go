package build

import (
	"path/filepath"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/lukassup/json-dirtree/cli"
	"github.com/lukassup/json-dirtree/comm"
	"github.com/lukassup/json-dirtree/conf"
	"github.com/lukassup/json-dirtree/dirtree"
	"github.com/lukassup/json-dirtree/filtering"
)

var args = struct {
	dirs        *[]string
	outDir      *string
	hidden      *bool
	contents    *bool
	dereference *bool
	filter      *bool
}{}

func Register(ctx *cli.Context) {
	cmd := ctx.App.Command("build", "Build JSON output from directory and file trees")
	args.outDir = cmd.Flag("out-dir", "Output directory (default: working directory)").Short('o').String()
	args.hidden = cmd.Flag("hidden", "Include hidden files").Bool()
	args.contents = cmd.Flag("contents", "Bind file leaves to their contents instead of null").Bool()
	args.dereference = cmd.Flag("dereference", "Follow symlinks").Default("false").Bool()
	args.filter = cmd.Flag("filter", "Leave out junk names like .git and Thumbs.db").Bool()
	args.dirs = cmd.Arg("dirs", "Source directories (default: directories under ./src/)").Strings()
	ctx.Register(cmd, do)
}

func do(ctx *cli.Context) {
	ctx.Must(Do(ctx, Params{
		Dirs:        *args.dirs,
		OutDir:      *args.outDir,
		Hidden:      *args.hidden,
		Contents:    *args.contents,
		Dereference: *args.dereference,
		Filter:      *args.filter,
	}))
}

// Params configures a build run.
type Params struct {
	Dirs        []string
	OutDir      string
	Hidden      bool
	Contents    bool
	Dereference bool

	// Filter turns on the junk-name filter. Off by default so the
	// document mirrors the filesystem entry for entry; an rc ignore
	// list turns it on too, since listing patterns is asking for it.
	Filter bool
}

// Do converts each source directory into one JSON document. A root
// that fails is logged and skipped; the run errors out afterwards if
// any root failed, so only all-green runs exit zero.
func Do(ctx *cli.Context, params Params) error {
	startTime := time.Now()

	cfg, err := conf.Load(".")
	if err != nil {
		return errors.WithStack(err)
	}
	if cfg != nil {
		comm.Debugf("loaded rc file %s", conf.Name)
		filtering.Extend(cfg.Ignore)
		if params.OutDir == "" {
			params.OutDir = cfg.OutDir
		}
		params.Hidden = params.Hidden || cfg.Hidden
		params.Filter = params.Filter || len(cfg.Ignore) > 0
	}
	if params.OutDir == "" {
		params.OutDir = "."
	}

	dirs := params.Dirs
	if len(dirs) == 0 {
		dirs, err = cli.SourceDirs()
		if err != nil {
			return errors.WithStack(err)
		}
	}
	if len(dirs) == 0 {
		return errors.New("no source directories to build")
	}

	comm.Opf("building JSON trees for %d directories", len(dirs))

	opts := &dirtree.WalkOpts{
		Hidden:      params.Hidden,
		Contents:    params.Contents,
		Dereference: params.Dereference,
	}
	if params.Filter {
		opts.Filter = filtering.FilterName
	}

	written := 0
	var totalSize int64
	var failed []string

	for _, dir := range dirs {
		destPath, stats, err := buildOne(dir, params.OutDir, opts)
		if err != nil {
			if ctx.Verbose {
				comm.Warnf("%s: %+v", dir, err)
			} else {
				comm.Warnf("%s: %s", dir, err)
			}
			failed = append(failed, dir)
			continue
		}

		written++
		totalSize += stats.Size
		comm.ResultOrPrint(&cli.BuildResult{
			Type:     "built",
			Dir:      dir,
			OutPath:  destPath,
			NumFiles: stats.Files,
			NumDirs:  stats.Dirs,
		}, func() {
			comm.Logf("%s: wrote %s (%d dirs, %d files)", dir, destPath, stats.Dirs, stats.Files)
		})
	}

	comm.Statf("%d files written (%s walked) in %s",
		written, humanize.IBytes(uint64(totalSize)), time.Since(startTime))

	if len(failed) > 0 {
		return errors.Errorf("failed to process %d of %d directories: %s",
			len(failed), len(dirs), strings.Join(failed, ", "))
	}
	return nil
}

func buildOne(dir string, outDir string, opts *dirtree.WalkOpts) (string, *dirtree.Stats, error) {
	tree, stats, err := dirtree.Walk(dir, opts)
	if err != nil {
		return "", nil, err
	}

	destPath, err := dirtree.Emit(tree, outDir, filepath.Base(filepath.Clean(dir)))
	if err != nil {
		return "", nil, err
	}
	return destPath, stats, nil
}
