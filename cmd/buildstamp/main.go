package main

import (
	"context"
	"os"

	"github.com/davrd/buildstamp/internal/build"
	"github.com/davrd/buildstamp/internal/cmd"
)

type exitCode int

const (
	exitOK    exitCode = 0
	exitError exitCode = 1
)

func main() {
	code := mainRun()
	os.Exit(int(code))
}

func mainRun() exitCode {
	factory := cmd.NewFactory()
	ctx := context.Background()

	rootCmd, err := cmd.NewCmdRoot(factory, build.Version(), build.Date())
	if err != nil {
		factory.Logger.Errorf("failed to create root command: %s", err)
		return exitError
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		factory.Logger.Errorf("exec: %s", err)
		return exitError
	}

	return exitOK
}
