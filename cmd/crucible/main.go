// Command crucible reads a digit grid and prints the minimal heat loss for
// each configured move profile.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/crucible/internal/app"
	"github.com/katalvlaran/crucible/internal/cli"
)

func main() {
	// Minimal logger until the configured one exists.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so it can be driven from tests.
func run(ctx context.Context, args []string, stdin io.Reader, outW, errW io.Writer) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	return app.NewApp(cfg, stdin, outW, errW).Run(ctx)
}
