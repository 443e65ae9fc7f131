package main

import (
	"github.com/lukassup/json-dirtree/cli"
	"github.com/lukassup/json-dirtree/cmd/build"
	"github.com/lukassup/json-dirtree/cmd/check"
	"github.com/lukassup/json-dirtree/cmd/walk"
)

// Each of these specify their own arguments and flags in
// their own package.
func registerCommands(ctx *cli.Context) {
	// documented commands

	build.Register(ctx)
	check.Register(ctx)

	// hidden commands

	walk.Register(ctx)
}
