package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ccparse/ccparse/lexer"
	"github.com/ccparse/ccparse/parser"
	"github.com/ccparse/ccparse/store"
	"github.com/urfave/cli/v3"
)

var parseCommand = &cli.Command{
	Name:      "parse",
	Usage:     "parse a C source file and print diagnostics",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "tweaker-file", Usage: "YAML file seeding known typedefs/enum constants"},
		&cli.StringFlag{Name: "store", Usage: "DSN of a corpus store to record this run in, e.g. sqlite:/tmp/corpus.db"},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.Args().First()
		if path == "" {
			return fmt.Errorf("parse: missing <file> argument")
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		tweaker, err := loadTweaker(cmd.String("tweaker-file"))
		if err != nil {
			return fmt.Errorf("parse: loading tweaker file: %w", err)
		}

		started := time.Now()
		seq, sm, lexErrs := lexer.Lex(string(src), &path)
		res := parser.Parse(seq, tweaker)
		elapsed := time.Since(started)

		for _, e := range lexErrs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", e.Kind, e.Message)
		}
		if rendered := res.Diags.Render(sm, string(src)); rendered != "" {
			fmt.Fprintln(os.Stderr, rendered)
		}
		fmt.Println(res.Node.String())

		slog.Debug("parse finished", "file", path, "elapsed", elapsed, "diagnostics", res.Diags.Len())

		if dsn := cmd.String("store"); dsn != "" {
			if err := recordRun(ctx, dsn, path, len(seq.Tokens), res.Diags.Len(), elapsed); err != nil {
				return fmt.Errorf("parse: recording run: %w", err)
			}
		}
		return nil
	},
}

func recordRun(ctx context.Context, dsn, file string, tokenCount, errorCount int, elapsed time.Duration) error {
	s, err := store.Open(dsn)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.RecordRun(ctx, store.ParseRun{
		File:       file,
		Kind:       "parse",
		StartedAt:  time.Now().Add(-elapsed),
		Duration:   elapsed,
		TokenCount: tokenCount,
		ErrorCount: errorCount,
	})
}
