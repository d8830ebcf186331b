package main

import (
	"os"

	"github.com/katalvlaran/tubeplan/internal/cli"
)

// Populated via ldflags at build time.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
