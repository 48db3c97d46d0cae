// Package interp wires the lexer, parser, and evaluator into the few entry
// points every caller needs: run a program against an arbitrary output
// sink, or run it and capture the output as a string. cmd/erio and the REPL
// both build on this package rather than driving the pipeline themselves.
package interp

import (
	"strings"

	"erio/evaluator"
	"erio/lexer"
	"erio/object"
	"erio/parser"
)

// Run parses and executes src, writing any `print` output to out. It
// returns the first error encountered from any pipeline stage — lexing,
// parsing, or evaluation.
func Run(src string, out object.OutputSink) error {
	env := object.NewEnvironment()
	object.RegisterBuiltins(env, out)
	return RunWithEnv(env, src)
}

// RunWithEnv executes src against an already-prepared environment, so a
// caller (the REPL) can run successive snippets against one persistent set
// of bindings.
func RunWithEnv(env *object.Environment, src string) error {
	prog, err := parser.ParseProgram(lexer.New(src))
	if err != nil {
		return err
	}
	_, err = evaluator.Execute(env, prog.Statements)
	return err
}

// stringSink adapts a strings.Builder to object.OutputSink.
type stringSink struct {
	sb strings.Builder
}

func (s *stringSink) WriteString(str string) (int, error) { return s.sb.WriteString(str) }

// RunToString parses and executes src against a fresh environment, and
// returns everything printed during that run.
func RunToString(src string) (string, error) {
	sink := &stringSink{}
	env := object.NewEnvironment()
	object.RegisterBuiltins(env, sink)
	if err := RunWithEnv(env, src); err != nil {
		return sink.sb.String(), err
	}
	return sink.sb.String(), nil
}
