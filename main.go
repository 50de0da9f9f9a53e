package main

import (
	"os"

	"github.com/xolan/tally/cmd"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

func run(args []string) int {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(args); err != nil {
		return 1
	}
	return 0
}

func main() {
	exitFunc(run(os.Args[1:]))
}
