package walk

import (
	"sort"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/lukassup/json-dirtree/cli"
	"github.com/lukassup/json-dirtree/comm"
	"github.com/lukassup/json-dirtree/dirtree"
)

var args = struct {
	dir         *string
	hidden      *bool
	dereference *bool
}{}

func Register(ctx *cli.Context) {
	cmd := ctx.App.Command("walk", "Finds all files in a directory").Hidden()
	args.dir = cmd.Arg("dir", "A dir you want to walk").Required().String()
	args.hidden = cmd.Flag("hidden", "Include hidden files").Bool()
	args.dereference = cmd.Flag("dereference", "Follow symlinks").Default("false").Bool()
	ctx.Register(cmd, do)
}

func do(ctx *cli.Context) {
	ctx.Must(Do(ctx, *args.dir, *args.hidden, *args.dereference))
}

func Do(ctx *cli.Context, dir string, hidden bool, dereference bool) error {
	startTime := time.Now()

	tree, stats, err := dirtree.Walk(dir, &dirtree.WalkOpts{
		Hidden:      hidden,
		Dereference: dereference,
	})
	if err != nil {
		return errors.Wrap(err, "walking")
	}

	totalEntries := 0
	send := func(path string) {
		totalEntries++
		comm.ResultOrPrint(&cli.WalkResult{
			Type: "entry",
			Path: path,
		}, func() {
			comm.Logf("- %s", path)
		})
	}

	sendLeaves(tree, "", send)

	comm.ResultOrPrint(&cli.WalkResult{
		Type: "totalSize",
		Size: stats.Size,
	}, func() {
		comm.Statf("%d entries (%s) walked in %s",
			totalEntries, humanize.IBytes(uint64(stats.Size)), time.Since(startTime))
	})

	return nil
}

// sendLeaves visits file leaves depth-first in name order, so the
// output is stable across runs
func sendLeaves(tree dirtree.Tree, prefix string, send func(path string)) {
	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := name
		if prefix != "" {
			path = prefix + "/" + name
		}
		if sub, ok := tree[name].(dirtree.Tree); ok {
			sendLeaves(sub, path, send)
		} else {
			send(path)
		}
	}
}
