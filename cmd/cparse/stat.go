package main

import (
	"context"
	"fmt"

	"github.com/ccparse/ccparse/store"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

var statCommand = &cli.Command{
	Name:      "stat",
	Usage:     "show recorded run history for a file from a corpus store",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "store", Usage: "DSN of the corpus store to query", Required: true},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		file := cmd.Args().First()
		if file == "" {
			return fmt.Errorf("stat: missing <file> argument")
		}

		s, err := store.Open(cmd.String("store"))
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.RunsForFile(ctx, file)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Printf("no recorded runs for %s\n", file)
			return nil
		}

		for _, r := range runs {
			fmt.Printf("%-6s %s  %s  tokens=%-6d errors=%-3d duration=%s\n",
				r.Kind, r.ID, humanize.Time(r.StartedAt), r.TokenCount, r.ErrorCount, r.Duration)
		}
		return nil
	},
}
