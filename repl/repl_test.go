package repl

import (
	"bytes"
	"strings"
	"testing"
)

func runSession(input string) string {
	in := strings.NewReader(input)
	var out bytes.Buffer
	Start(in, &out)
	return out.String()
}

func TestPrintAndExit(t *testing.T) {
	output := runSession("print(\"hi\")\n.exit")
	if !strings.Contains(output, "hi") {
		t.Errorf("expected REPL output to contain printed value, got:\n%s", output)
	}
}

func TestVariablePersistsAcrossLines(t *testing.T) {
	input := "x = 50\nprint(x)\n.exit"
	output := runSession(input)
	if !strings.Contains(output, "50") {
		t.Errorf("expected environment to persist across lines, got:\n%s", output)
	}
}

func TestClearResetsEnvironment(t *testing.T) {
	input := "x = 10\n.clear\nprint(x)\n.exit"
	output := runSession(input)
	if !strings.Contains(output, "not defined") {
		t.Errorf("expected .clear to drop prior bindings, got:\n%s", output)
	}
}

func TestUnknownDotCommand(t *testing.T) {
	output := runSession(".banana\n.exit")
	if !strings.Contains(output, "unknown command") {
		t.Errorf("expected an unknown-command message, got:\n%s", output)
	}
}

func TestTokensHelper(t *testing.T) {
	toks, err := Tokens("x = 1")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(toks) != 4 { // identifier, assignment, integer, eof
		t.Fatalf("expected 4 tokens, got %d: %v", len(toks), toks)
	}
}

func TestASTHelper(t *testing.T) {
	out, err := AST("x = 1")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(out, "x = 1") {
		t.Errorf("expected rendered AST to contain the assignment, got: %s", out)
	}
}
