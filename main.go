package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/lox/cli"
	"github.com/ardnew/lox/cli/cmd"
	"github.com/ardnew/lox/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		if !cmd.Reported(err) {
			log.Error(
				"run failed",
				slog.Any("error", err),
			) // slog automatically uses LogValue()
		}

		os.Exit(cmd.ExitCode(err))
	}
}
