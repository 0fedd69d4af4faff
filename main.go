package main

import (
	"errors"
	"fmt"
	"os"

	"combo/internal/cli"
	"combo/pkg/logger"
)

func main() {
	exitCode := 0
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrCancelled) {
			fmt.Fprintln(os.Stderr, err)
		}
		exitCode = 1
	}

	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
