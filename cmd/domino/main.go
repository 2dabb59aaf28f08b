// Package main is the entry point for the domino CLI.
//
// All functionality lives in the internal/cli package, which defines the
// cobra commands. Build-time variables (version, commit, date) are injected
// via ldflags and default to "dev", "none", and "unknown" respectively.
package main

import (
	"github.com/mmr-tortoise/domino/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
