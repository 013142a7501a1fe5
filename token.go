package main

import (
	"fmt"
	"strconv"
)

// TokenKind classifies a lexical unit of a GRIN line.
type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenIdentifier
	TokenKeyword
	TokenInteger
	TokenFloat
	TokenString
	TokenOperator
	TokenColon
)

var tokenKindNames = [...]string{
	TokenInvalid:    "invalid",
	TokenIdentifier: "identifier",
	TokenKeyword:    "keyword",
	TokenInteger:    "integer literal",
	TokenFloat:      "float literal",
	TokenString:     "string literal",
	TokenOperator:   "operator",
	TokenColon:      "colon",
}

func (kind TokenKind) String() string {
	if int(kind) < len(tokenKindNames) {
		return tokenKindNames[kind]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(kind))
}

// Token is a lexical unit: its kind, raw text, decoded value for literals,
// and the line and 1-based column it was scanned from.
type Token struct {
	Kind   TokenKind
	Text   string
	Value  Value
	Line   int
	Column int
}

// IsLiteral returns true for integer, float, and string literal tokens.
func (tok Token) IsLiteral() bool {
	switch tok.Kind {
	case TokenInteger, TokenFloat, TokenString:
		return true
	}
	return false
}

func (tok Token) String() string { return tok.Text }

// GoString renders a token for test failures and trace logs.
func (tok Token) GoString() string {
	return fmt.Sprintf("%v %v @%v:%v", tok.Kind, strconv.Quote(tok.Text), tok.Line, tok.Column)
}

// Ident constructs an identifier token, as if scanned from a program line.
func Ident(name string) Token { return Token{Kind: TokenIdentifier, Text: name} }

// Literal constructs a literal token holding the given value.
func Literal(val Value) Token {
	tok := Token{Value: val, Text: val.String()}
	switch val.Kind() {
	case IntegerValue:
		tok.Kind = TokenInteger
	case FloatValue:
		tok.Kind = TokenFloat
	case TextValue:
		tok.Kind = TokenString
		tok.Text = strconv.Quote(val.text)
	}
	return tok
}

var keywords = map[string]struct{}{
	"LET":    {},
	"PRINT":  {},
	"INNUM":  {},
	"INSTR":  {},
	"ADD":    {},
	"SUB":    {},
	"MULT":   {},
	"DIV":    {},
	"GOTO":   {},
	"GOSUB":  {},
	"RETURN": {},
	"END":    {},
	"IF":     {},
}

func isKeyword(word string) bool {
	_, is := keywords[word]
	return is
}
