package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/club-loyal/internal/app"
	"github.com/fsdevblog/club-loyal/internal/config"
	"github.com/fsdevblog/club-loyal/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout, logger.WithLevel(conf.LogLevel))

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
