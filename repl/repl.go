// Package repl implements an interactive read-eval-print loop for Erio: a
// convenience layer over interp, not part of the language's core pipeline.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"erio/ast"
	"erio/interp"
	"erio/lexer"
	"erio/object"
	"erio/parser"
	"erio/token"
)

const (
	PROMPT = "erio> "
	LOGO   = `
┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
┃  Erio                         ┃
┃  a small imperative language  ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
`
)

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Yellow = "\033[33m"
	Gray   = "\033[37m"
	Bold   = "\033[1m"
)

// Start launches the loop: it reads lines from in, evaluates each against
// one persistent Environment, and writes print() output and error messages
// to out.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	env := newSessionEnv(out)
	tokenMode := false

	fmt.Fprint(out, LOGO)
	printHelp(out)

	for {
		fmt.Fprint(out, Gray+PROMPT+Reset)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			switch line {
			case ".exit":
				fmt.Fprintln(out, Yellow+"bye"+Reset)
				return
			case ".clear":
				env = newSessionEnv(out)
				fmt.Fprintln(out, Yellow+"environment cleared"+Reset)
			case ".tokens":
				tokenMode = !tokenMode
				status := "off"
				if tokenMode {
					status = "on"
				}
				fmt.Fprintf(out, Gray+"token mode %s\n"+Reset, status)
			case ".help":
				printHelp(out)
			default:
				fmt.Fprintf(out, Red+"unknown command: %s\n"+Reset, line)
			}
			continue
		}

		if tokenMode {
			printTokens(out, line)
			continue
		}

		if err := run(env, line); err != nil {
			fmt.Fprintf(out, Red+Bold+"error: "+Reset+Red+"%s\n"+Reset, err)
		}
		fmt.Fprintln(out)
	}
}

func newSessionEnv(out io.Writer) *object.Environment {
	env := object.NewEnvironment()
	object.RegisterBuiltins(env, writerSink{out})
	return env
}

// writerSink adapts an io.Writer to object.OutputSink.
type writerSink struct {
	w io.Writer
}

func (s writerSink) WriteString(str string) (int, error) { return fmt.Fprint(s.w, str) }

func run(env *object.Environment, line string) error {
	return interp.RunWithEnv(env, line)
}

func printTokens(out io.Writer, line string) {
	toks, err := Tokens(line)
	for _, tok := range toks {
		fmt.Fprintf(out, Gray+"  %-10s %q\n"+Reset, tok.Kind, tok.Lexeme)
	}
	if err != nil {
		fmt.Fprintf(out, Red+"error: %s\n"+Reset, err)
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, Gray+"Commands:")
	fmt.Fprintln(out, "  .exit    quit the REPL")
	fmt.Fprintln(out, "  .clear   reset the environment")
	fmt.Fprintln(out, "  .tokens  toggle printing each line's tokens instead of running it")
	fmt.Fprintln(out, "  .help    show this message"+Reset)
	fmt.Fprintln(out)
}

// Tokens lexes src entirely and returns its token stream, for the .tokens
// debug command and for tests.
func Tokens(src string) ([]token.Token, error) {
	l := lexer.New(src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// AST parses src and renders its program tree as text, for debug tooling.
func AST(src string) (string, error) {
	prog, err := parser.ParseProgram(lexer.New(src))
	if err != nil {
		return "", err
	}
	var node ast.Node = prog
	return node.String(), nil
}
