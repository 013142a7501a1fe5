package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Lex splits one line of program text into tokens. The line number is only
// recorded in the tokens and any error, so that later failures can point
// back to the source.
func Lex(line int, text string) ([]Token, error) {
	lex := lexer{line: line, text: text}
	var toks []Token
	for {
		tok, err := lex.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenInvalid {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

type lexer struct {
	line int
	text string
	pos  int
}

// LexError locates a character that does not start or continue any token.
type LexError struct {
	Line   int
	Column int
	Reason string
}

func (err LexError) Error() string {
	return fmt.Sprintf("%v: column %v: %v", ErrMalformedStatement, err.Column, err.Reason)
}

// Unwrap classifies every lexical failure as a malformed statement.
func (err LexError) Unwrap() error { return ErrMalformedStatement }

func (lex *lexer) errorf(at int, mess string, args ...interface{}) error {
	return LexError{lex.line, at + 1, fmt.Sprintf(mess, args...)}
}

func (lex *lexer) token(kind TokenKind, start int) Token {
	return Token{
		Kind:   kind,
		Text:   lex.text[start:lex.pos],
		Line:   lex.line,
		Column: start + 1,
	}
}

func (lex *lexer) peek() byte {
	if lex.pos < len(lex.text) {
		return lex.text[lex.pos]
	}
	return 0
}

func (lex *lexer) next() (Token, error) {
	for lex.pos < len(lex.text) && isSpace(lex.text[lex.pos]) {
		lex.pos++
	}
	if lex.pos >= len(lex.text) {
		return Token{}, nil
	}

	start := lex.pos
	switch c := lex.text[lex.pos]; {
	case isLetter(c):
		for lex.pos++; isLetter(lex.peek()) || isDigit(lex.peek()) || lex.peek() == '_'; lex.pos++ {
		}
		tok := lex.token(TokenIdentifier, start)
		if isKeyword(tok.Text) {
			tok.Kind = TokenKeyword
		}
		return tok, nil

	case isDigit(c), c == '-':
		return lex.number(start)

	case c == '"':
		end := strings.IndexByte(lex.text[start+1:], '"')
		if end < 0 {
			return Token{}, lex.errorf(start, "unterminated string literal")
		}
		lex.pos = start + 1 + end + 1
		tok := lex.token(TokenString, start)
		tok.Value = Text(tok.Text[1 : len(tok.Text)-1])
		return tok, nil

	case c == ':':
		lex.pos++
		return lex.token(TokenColon, start), nil

	case c == '=':
		lex.pos++
		return lex.token(TokenOperator, start), nil

	case c == '<':
		lex.pos++
		if d := lex.peek(); d == '=' || d == '>' {
			lex.pos++
		}
		return lex.token(TokenOperator, start), nil

	case c == '>':
		lex.pos++
		if lex.peek() == '=' {
			lex.pos++
		}
		return lex.token(TokenOperator, start), nil

	default:
		return Token{}, lex.errorf(start, "unexpected character %q", rune(c))
	}
}

func (lex *lexer) number(start int) (Token, error) {
	if lex.peek() == '-' {
		lex.pos++
		if !isDigit(lex.peek()) {
			return Token{}, lex.errorf(start, "expected digits after '-'")
		}
	}
	for isDigit(lex.peek()) {
		lex.pos++
	}

	kind := TokenInteger
	if lex.peek() == '.' {
		kind = TokenFloat
		lex.pos++
		if !isDigit(lex.peek()) {
			return Token{}, lex.errorf(lex.pos, "expected digits after decimal point")
		}
		for isDigit(lex.peek()) {
			lex.pos++
		}
	}
	if c := lex.peek(); isLetter(c) || c == '_' || c == '.' {
		return Token{}, lex.errorf(lex.pos, "unexpected character %q in number", rune(c))
	}

	tok := lex.token(kind, start)
	if kind == TokenFloat {
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return Token{}, lex.errorf(start, "invalid float literal %v", tok.Text)
		}
		tok.Value = Float(f)
	} else {
		i, err := strconv.ParseInt(tok.Text, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return Token{}, lex.errorf(start, "integer literal %v out of range", tok.Text)
		} else if err != nil {
			return Token{}, lex.errorf(start, "invalid integer literal %v", tok.Text)
		}
		tok.Value = Integer(i)
	}
	return tok, nil
}

func isSpace(c byte) bool  { return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f' }
func isDigit(c byte) bool  { return '0' <= c && c <= '9' }
func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
