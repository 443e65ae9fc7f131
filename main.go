package main

import (
	"log"
	"os"

	"github.com/lukassup/json-dirtree/cli"
	"github.com/lukassup/json-dirtree/comm"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	version = "head" // set by command-line on CI release builds
	app     = kingpin.New("json-dirtree", "Convert file and directory hierarchies to JSON")
)

var appArgs = struct {
	verbose    *bool
	quiet      *bool
	json       *bool
	timestamps *bool
	panic      *bool
}{
	app.Flag("verbose", "Display as much extra info as possible").Short('v').Bool(),
	app.Flag("quiet", "Hide non-essential messages").Short('q').Bool(),
	app.Flag("json", "Enable machine-readable JSON-lines output").Short('j').Bool(),
	app.Flag("timestamps", "Prefix all output by timestamps (for logging purposes)").Bool(),
	app.Flag("panic", "Panic on error instead of exiting").Hidden().Bool(),
}

func main() {
	app.HelpFlag.Short('h')
	app.Version(version)
	app.VersionFlag.Short('V')

	ctx := cli.NewContext(app)
	ctx.Version = version
	registerCommands(ctx)

	cmd, err := app.Parse(os.Args[1:])
	if *appArgs.timestamps {
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	} else {
		log.SetFlags(0)
	}

	if *appArgs.verbose && *appArgs.quiet {
		app.Fatalf("--verbose and --quiet are mutually exclusive")
	}

	ctx.Quiet = *appArgs.quiet
	ctx.Verbose = *appArgs.verbose
	ctx.JSON = *appArgs.json

	comm.Configure(*appArgs.quiet, *appArgs.verbose, *appArgs.json, *appArgs.panic)

	fullCmd := kingpin.MustParse(cmd, err)
	do := ctx.Commands[fullCmd]
	if do == nil {
		comm.Dief("unknown command: %s", fullCmd)
	}
	do(ctx)
}
