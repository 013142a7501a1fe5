package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gogrin/internal/fileinput"
)

// ParseLine lexes and parses one line of program text, returning its label,
// if any, and its statement.
func ParseLine(line int, text string) (label string, stmt Statement, err error) {
	toks, err := Lex(line, text)
	if err != nil {
		return "", nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens strips an optional leading `label :` prefix from toks, and
// builds a Statement from the rest according to its first token.
func ParseTokens(toks []Token) (label string, stmt Statement, err error) {
	if len(toks) >= 2 && toks[1].Kind == TokenColon {
		switch toks[0].Kind {
		case TokenIdentifier, TokenKeyword:
			label, toks = toks[0].Text, toks[2:]
		default:
			return "", nil, fmt.Errorf("%w: label must be a name, not %v", ErrMalformedStatement, toks[0].Kind)
		}
	}
	stmt, err = parseStatement(toks)
	return label, stmt, err
}

func parseStatement(toks []Token) (Statement, error) {
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: missing statement", ErrMalformedStatement)
	}

	command := toks[0].Text
	if toks[0].Kind != TokenKeyword {
		return nil, fmt.Errorf("%w: unknown command %q", ErrMalformedStatement, command)
	}

	switch command {
	case "LET":
		if err := expectArity(toks, 3); err != nil {
			return nil, err
		}
		return checked(Assign{Target: toks[1], Source: toks[2]},
			expectTarget(command, toks[1]),
			expectOperand(command, toks[2]))

	case "PRINT":
		if err := expectArity(toks, 2); err != nil {
			return nil, err
		}
		return checked(Print{Source: toks[1]}, expectOperand(command, toks[1]))

	case "INNUM":
		if err := expectArity(toks, 2); err != nil {
			return nil, err
		}
		return checked(ReadNumber{Target: toks[1]}, expectTarget(command, toks[1]))

	case "INSTR":
		if err := expectArity(toks, 2); err != nil {
			return nil, err
		}
		return checked(ReadText{Target: toks[1]}, expectTarget(command, toks[1]))

	case "ADD", "SUB", "MULT", "DIV":
		if err := expectArity(toks, 3); err != nil {
			return nil, err
		}
		return checked(Arithmetic{Op: arithOps[command], Target: toks[1], Source: toks[2]},
			expectTarget(command, toks[1]),
			expectOperand(command, toks[2]))

	case "GOTO", "GOSUB":
		// GOTO target | GOTO target IF left op right
		if err := expectArity(toks, 2, 6); err != nil {
			return nil, err
		}
		target := toks[1]
		if target.Kind == TokenColon || target.Kind == TokenOperator {
			return nil, fmt.Errorf("%w: %v target must be a label or line offset, not %q",
				ErrMalformedStatement, command, target.Text)
		}
		var cond *Condition
		if len(toks) == 6 {
			c, err := parseCondition(command, toks[2:])
			if err != nil {
				return nil, err
			}
			cond = &c
		}
		if command == "GOTO" {
			return Jump{Target: target, Cond: cond}, nil
		}
		return Call{Target: target, Cond: cond}, nil

	case "RETURN":
		if err := expectArity(toks, 1); err != nil {
			return nil, err
		}
		return Return{}, nil

	case "END":
		if err := expectArity(toks, 1); err != nil {
			return nil, err
		}
		return Halt{}, nil
	}

	return nil, fmt.Errorf("%w: unknown command %q", ErrMalformedStatement, command)
}

// parseCondition parses `IF left op right`.
func parseCondition(command string, toks []Token) (Condition, error) {
	if toks[0].Kind != TokenKeyword || toks[0].Text != "IF" {
		return Condition{}, fmt.Errorf("%w: %v expected IF, not %q", ErrMalformedStatement, command, toks[0].Text)
	}
	op, ok := compareOps[toks[2].Text]
	if toks[2].Kind != TokenOperator || !ok {
		return Condition{}, fmt.Errorf("%w: %v expected a comparison operator, not %q", ErrMalformedStatement, command, toks[2].Text)
	}
	if err := expectOperand(command, toks[1]); err != nil {
		return Condition{}, err
	}
	if err := expectOperand(command, toks[3]); err != nil {
		return Condition{}, err
	}
	return Condition{Left: toks[1], Op: op, Right: toks[3]}, nil
}

func expectArity(toks []Token, counts ...int) error {
	for _, n := range counts {
		if len(toks) == n {
			return nil
		}
	}
	return arityError{toks[0].Text, counts, len(toks)}
}

func expectTarget(command string, tok Token) error {
	if tok.Kind != TokenIdentifier {
		return fmt.Errorf("%w: %v target must be a variable name, not %v %q",
			ErrMalformedStatement, command, tok.Kind, tok.Text)
	}
	return nil
}

func expectOperand(command string, tok Token) error {
	if tok.Kind != TokenIdentifier && !tok.IsLiteral() {
		return fmt.Errorf("%w: %v operand must be a variable or literal, not %v %q",
			ErrMalformedStatement, command, tok.Kind, tok.Text)
	}
	return nil
}

func checked(stmt Statement, errs ...error) (Statement, error) {
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// LineReader provides program text and run time input one line at a time.
type LineReader interface {
	ReadLine() (string, error)
}

type locator interface {
	Location() fileinput.Location
}

// EndOfProgram is the line that terminates program text.
const EndOfProgram = "."

// Assemble reads lines from in, appending each parsed statement to prog,
// until a line holding only EndOfProgram or the end of input. Blank lines
// are skipped, but still counted. Every malformed line is reported in the
// returned error, as a joined ParseError per line; statements from good
// lines are appended regardless.
func Assemble(in LineReader, prog *Program) error {
	return assemble(in, prog, nil)
}

func assemble(in LineReader, prog *Program, logf func(mark, mess string, args ...interface{})) error {
	var errs []error
	for n := 1; ; n++ {
		text, err := in.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			errs = append(errs, err)
			break
		}
		if strings.TrimSpace(text) == EndOfProgram {
			break
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		loc := fileinput.Location{Line: n}
		if lr, ok := in.(locator); ok {
			loc = lr.Location()
		}

		label, stmt, err := ParseLine(n, text)
		if err != nil {
			errs = append(errs, ParseError{loc, text, err})
			continue
		}
		if prior, redefined := prog.Append(Entry{Label: label, Stmt: stmt, Loc: loc}); redefined && logf != nil {
			logf("label", "%v: %v redefined, shadowing program line %v", loc, label, prior+1)
		}
	}
	return errors.Join(errs...)
}
