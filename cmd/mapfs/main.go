package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mapfs-io/mapfs/internal/cli"
	"github.com/mapfs-io/mapfs/pkg/mapfs"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(mapfs.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(mapfs.ExitCodeForError(err))
	}
}
