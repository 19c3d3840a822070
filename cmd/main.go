package main

import (
	"os"

	"github.com/takak2166/arc2bookmarks/internal/cli"
	"github.com/takak2166/arc2bookmarks/internal/logger"
)

func main() {
	// Keep stdout for status messages
	logger.SetOutput(os.Stderr)

	if err := cli.New(os.Stdout).RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
