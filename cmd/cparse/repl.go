package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ccparse/ccparse/ast"
	"github.com/ccparse/ccparse/lexer"
	"github.com/ccparse/ccparse/parser"
	"github.com/ccparse/ccparse/symtab"
	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

var replCommand = &cli.Command{
	Name:  "repl",
	Usage: "parse one statement or expression per line, interactively",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return runInteractiveREPL()
		}
		return runPipedREPL()
	},
}

// replState accumulates typedef/enum-constant names declared on
// earlier lines, since every line is parsed as its own independent
// fragment and would otherwise forget them.
type replState struct {
	typedefs      []string
	enumConstants []string
}

func (s *replState) tweaker() parser.ContextTweaker {
	return func(t *symtab.Table) {
		for _, name := range s.typedefs {
			t.AddTypedefName(name)
		}
		for _, name := range s.enumConstants {
			t.AddEnumConstant(name)
		}
	}
}

func (s *replState) learnFrom(node ast.Node) {
	decl, ok := node.(*ast.Declaration)
	if !ok {
		return
	}
	if es, ok := decl.Specs.TypeSpec.(*ast.EnumSpecifier); ok {
		for _, e := range es.Values {
			s.enumConstants = append(s.enumConstants, e.Name.Name)
		}
	}
	isTypedef := false
	for _, sc := range decl.Specs.StorageClass {
		if sc == "typedef" {
			isTypedef = true
		}
	}
	if !isTypedef {
		return
	}
	for _, id := range decl.Decls {
		if name := declaratorName(id.Decl); name != "" {
			s.typedefs = append(s.typedefs, name)
		}
	}
}

func declaratorName(d ast.Declarator) string {
	switch n := d.(type) {
	case *ast.PlainDeclarator:
		return n.Name.Name
	case *ast.Pointer:
		return declaratorName(n.Inner)
	case *ast.ArrayDeclarator:
		return declaratorName(n.Inner)
	case *ast.FunctionDeclarator:
		return declaratorName(n.Inner)
	default:
		return ""
	}
}

// fragmentRuleFor guesses which grammar entry point a REPL line wants:
// a trailing ';' or '}' reads as a statement (possibly a declaration),
// anything else is parsed as a bare expression.
func fragmentRuleFor(line string) parser.FragmentRule {
	trimmed := strings.TrimSpace(line)
	if strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "}") {
		return parser.RuleStatement
	}
	return parser.RuleExpression
}

func evalREPLLine(state *replState, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	rule := fragmentRuleFor(line)
	seq, sm, lexErrs := lexer.Lex(line, nil)
	res := parser.ParseFragment(seq, rule, state.tweaker())
	for _, e := range lexErrs {
		fmt.Printf("%s: %s\n", e.Kind, e.Message)
	}
	if rendered := res.Diags.Render(sm, line); rendered != "" {
		fmt.Println(rendered)
	}
	fmt.Println(res.Node.String())
	state.learnFrom(res.Node)
}

func runInteractiveREPL() error {
	rl, err := readline.New("cparse> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	state := &replState{}
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			break
		}
		if trimmed := strings.TrimSpace(line); trimmed == "exit" || trimmed == "quit" {
			break
		}
		evalREPLLine(state, line)
	}
	return nil
}

func runPipedREPL() error {
	scanner := bufio.NewScanner(os.Stdin)
	state := &replState{}
	for scanner.Scan() {
		evalREPLLine(state, scanner.Text())
	}
	return scanner.Err()
}
