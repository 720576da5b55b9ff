package cmd

import (
	"io"
	"os"

	"github.com/davrd/buildstamp/internal/clock"
	"github.com/davrd/buildstamp/internal/logger"
	"github.com/davrd/buildstamp/internal/toolchain"
)

type Factory struct {
	Logger    logger.LogWriter
	Clock     clock.Clock
	Toolchain toolchain.Querier
	Stdout    io.Writer
}

func NewFactory() *Factory {
	return &Factory{
		Logger:    logger.New(),
		Clock:     clock.New(),
		Toolchain: toolchain.New(),
		Stdout:    os.Stdout,
	}
}
