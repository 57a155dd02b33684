// Command cparse is a small CLI around the lexer/parser packages: lex
// or parse a file, drop into an interactive REPL, or inspect a corpus
// store's recorded run history.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ccparse/ccparse/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:    version.Name,
		Usage:   "lex and parse C23 translation units",
		Version: version.Version(),
		Commands: []*cli.Command{
			lexCommand,
			parseCommand,
			replCommand,
			statCommand,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelWarn
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
