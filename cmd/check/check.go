package check

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/lukassup/json-dirtree/certcheck"
	"github.com/lukassup/json-dirtree/cli"
	"github.com/lukassup/json-dirtree/comm"
	"github.com/lukassup/json-dirtree/dirtree"
)

var args = struct {
	dirs    *[]string
	expired *bool
	hidden  *bool
}{}

func Register(ctx *cli.Context) {
	cmd := ctx.App.Command("check", "Verify TLS certificate validity in directories")
	args.expired = cmd.Flag("expired", "Find expired certs").Short('x').Bool()
	args.hidden = cmd.Flag("hidden", "Search hidden files").Short('a').Bool()
	args.dirs = cmd.Arg("dirs", "Source directories (default: directories under ./src/)").Strings()
	ctx.Register(cmd, do)
}

func do(ctx *cli.Context) {
	ctx.Must(Do(ctx, *args.dirs, *args.hidden, *args.expired))
}

// Do reports certificate properties (or just expiry, with expiredOnly)
// for every cert under each source directory, as an indented JSON tree
// per root. Failed roots are logged, skipped and fail the run at the
// end, like build.
func Do(ctx *cli.Context, dirs []string, hidden bool, expiredOnly bool) error {
	var err error
	if len(dirs) == 0 {
		dirs, err = cli.SourceDirs()
		if err != nil {
			return errors.WithStack(err)
		}
	}
	if len(dirs) == 0 {
		return errors.New("no source directories to check")
	}

	comm.Opf("verifying TLS certificates in directories: %s", strings.Join(dirs, ", "))

	opts := &certcheck.Opts{
		Hidden:      hidden,
		ExpiredOnly: expiredOnly,
	}

	numExpired := 0
	var failed []string
	for _, dir := range dirs {
		tree, err := certcheck.CheckDir(dir, opts)
		if err != nil {
			if ctx.Verbose {
				comm.Warnf("%s: %+v", dir, err)
			} else {
				comm.Warnf("%s: %s", dir, err)
			}
			failed = append(failed, dir)
			continue
		}

		numExpired += countExpired(tree)
		comm.ResultOrPrint(tree, func() {
			data, _ := json.MarshalIndent(tree, "", "  ")
			fmt.Println(string(data))
		})
	}

	if numExpired > 0 {
		comm.Notice("Expired certificates", []string{
			fmt.Sprintf("%d of the certificates found are expired", numExpired),
		})
	}

	if len(failed) > 0 {
		return errors.Errorf("failed to check %d of %d directories: %s",
			len(failed), len(dirs), strings.Join(failed, ", "))
	}
	return nil
}

// countExpired tallies expired certificates in both output shapes:
// bare booleans (expired-only mode) and full property maps
func countExpired(tree dirtree.Tree) int {
	count := 0
	for _, value := range tree {
		switch v := value.(type) {
		case dirtree.Tree:
			count += countExpired(v)
		case bool:
			if v {
				count++
			}
		case map[string]interface{}:
			if expired, _ := v["expired"].(bool); expired {
				count++
			}
		}
	}
	return count
}
