package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ccparse/ccparse/lexer"
	"github.com/urfave/cli/v3"
)

var lexCommand = &cli.Command{
	Name:      "lex",
	Usage:     "tokenize a C source file and print its balanced token tree",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "quasiquote", Usage: "recognize @name template markers"},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.Args().First()
		if path == "" {
			return fmt.Errorf("lex: missing <file> argument")
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var opts []lexer.Option
		if cmd.Bool("quasiquote") {
			opts = append(opts, lexer.WithQuasiQuote(true))
		}
		seq, _, lexErrs := lexer.Lex(string(src), &path, opts...)
		for _, e := range lexErrs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", e.Kind, e.Message)
		}
		printTokens(seq, 0)
		return nil
	},
}

func printTokens(seq *lexer.BalancedTokenSequence, depth int) {
	if seq == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	for _, tok := range seq.Tokens {
		fmt.Printf("%s%s %q\n", indent, tok.Kind, describeToken(tok))
		if tok.Group != nil {
			printTokens(tok.Group, depth+1)
		}
	}
}

func describeToken(tok lexer.BalancedToken) string {
	switch tok.Kind {
	case lexer.KindIdentifier, lexer.KindTemplate, lexer.KindUnknown, lexer.KindQuotedString:
		return tok.Text
	case lexer.KindPunctuator:
		return string(tok.Punct)
	case lexer.KindIntConstant:
		return tok.Int.Value.String()
	case lexer.KindFloatConstant:
		return fmt.Sprintf("%v", tok.Float.Value)
	case lexer.KindStringLiteral:
		return tok.String.Value
	case lexer.KindCharConstant:
		return string(tok.Char.Values)
	default:
		return ""
	}
}
