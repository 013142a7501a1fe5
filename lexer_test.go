package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	toks, err := Lex(3, `LOOP: GOTO -2 IF NAME_1 <= "a b"`)
	require.NoError(t, err)

	type tokSummary struct {
		Kind   TokenKind
		Text   string
		Column int
	}
	var have []tokSummary
	for _, tok := range toks {
		assert.Equal(t, 3, tok.Line, "token line for %#v", tok)
		have = append(have, tokSummary{tok.Kind, tok.Text, tok.Column})
	}
	assert.Equal(t, []tokSummary{
		{TokenIdentifier, "LOOP", 1},
		{TokenColon, ":", 5},
		{TokenKeyword, "GOTO", 7},
		{TokenInteger, "-2", 12},
		{TokenKeyword, "IF", 15},
		{TokenIdentifier, "NAME_1", 18},
		{TokenOperator, "<=", 25},
		{TokenString, `"a b"`, 28},
	}, have)

	assert.Equal(t, Integer(-2), toks[3].Value)
	assert.Equal(t, Text("a b"), toks[7].Value)
}

func TestLex_values(t *testing.T) {
	for _, tc := range []struct {
		text string
		kind TokenKind
		want Value
	}{
		{"0", TokenInteger, Integer(0)},
		{"-15", TokenInteger, Integer(-15)},
		{"3.25", TokenFloat, Float(3.25)},
		{"-0.5", TokenFloat, Float(-0.5)},
		{`""`, TokenString, Text("")},
		{`"x:y = 1"`, TokenString, Text("x:y = 1")},
	} {
		toks, err := Lex(1, tc.text)
		if assert.NoError(t, err, "Lex(%q)", tc.text) && assert.Len(t, toks, 1, "Lex(%q)", tc.text) {
			assert.Equal(t, tc.kind, toks[0].Kind, "Lex(%q) kind", tc.text)
			assert.Equal(t, tc.want, toks[0].Value, "Lex(%q) value", tc.text)
		}
	}
}

func TestLex_operators(t *testing.T) {
	toks, err := Lex(1, "< <= <> > >= =")
	require.NoError(t, err)
	var ops []string
	for _, tok := range toks {
		assert.Equal(t, TokenOperator, tok.Kind)
		ops = append(ops, tok.Text)
	}
	assert.Equal(t, []string{"<", "<=", "<>", ">", ">=", "="}, ops)
}

func TestLex_blank(t *testing.T) {
	toks, err := Lex(1, " \t ")
	assert.NoError(t, err)
	assert.Empty(t, toks)
}

func TestLex_errors(t *testing.T) {
	for _, tc := range []struct {
		text   string
		column int
	}{
		{`PRINT "open`, 7},
		{`LET A 5x`, 8},
		{`LET A 1.`, 9},
		{`LET A 1.2.3`, 10},
		{`LET A -`, 7},
		{`PRINT A!`, 8},
		{`LET A 99999999999999999999`, 7},
	} {
		_, err := Lex(4, tc.text)
		var lexErr LexError
		if assert.True(t, errors.As(err, &lexErr), "Lex(%q) expected LexError, got %v", tc.text, err) {
			assert.Equal(t, 4, lexErr.Line, "Lex(%q) line", tc.text)
			assert.Equal(t, tc.column, lexErr.Column, "Lex(%q) column", tc.text)
			assert.True(t, errors.Is(err, ErrMalformedStatement))
		}
	}
}
