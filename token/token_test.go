package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		kind  Kind
		ok    bool
	}{
		{"if", If, true},
		{"end-if", EndIf, true},
		{"end-while", EndWhile, true},
		{"end-def", EndDef, true},
		{"or", Or, true},
		{"not", Not, true},
		{"banana", "", false},
		{"endif", "", false}, // no hyphen: not a keyword
	}
	for _, c := range cases {
		kind, ok := LookupKeyword(c.ident)
		assert.Equal(t, c.ok, ok, c.ident)
		if c.ok {
			assert.Equal(t, c.kind, kind, c.ident)
		}
	}
}

func TestLookupSymbol(t *testing.T) {
	cases := []struct {
		lexeme string
		kind   Kind
	}{
		{"(", LParen},
		{")", RParen},
		{"==", Eq},
		{"!=", NotEq},
		{">=", Gte},
		{"<=", Lte},
		{"%", Mod},
	}
	for _, c := range cases {
		kind, ok := LookupSymbol(c.lexeme)
		assert.True(t, ok, c.lexeme)
		assert.Equal(t, c.kind, kind, c.lexeme)
	}

	_, ok := LookupSymbol("~")
	assert.False(t, ok)
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Integer, Lexeme: "42"}
	assert.Equal(t, "integer(42)", tok.String())
}
