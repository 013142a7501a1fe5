package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jcorbin/gogrin/internal/fileinput"
)

// Errors that may be matched by errors.Is against any error returned from
// loading or running a program.
var (
	ErrUndefinedVariable  = errors.New("undefined variable")
	ErrNonNumericOperand  = errors.New("non-numeric operand")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrInvalidTarget      = errors.New("invalid jump target")
	ErrUnknownLabel       = errors.New("unknown label")
	ErrUnbalancedReturn   = errors.New("RETURN without GOSUB")
	ErrInvalidInput       = errors.New("invalid numeric input")
	ErrMalformedStatement = errors.New("malformed statement")
	ErrCallDepthExceeded  = errors.New("GOSUB depth exceeded")
)

type nameError struct {
	error
	name string
}

func (err nameError) Error() string { return fmt.Sprintf("%v %v", err.error, err.name) }
func (err nameError) Unwrap() error { return err.error }

type operandError struct {
	error
	val Value
}

func (err operandError) Error() string {
	return fmt.Sprintf("%v %#v (%v)", err.error, err.val, err.val.Kind())
}
func (err operandError) Unwrap() error { return err.error }

type mismatchError struct{ a, b ValueKind }

func (err mismatchError) Error() string {
	return fmt.Sprintf("%v: cannot compare %v with %v", ErrTypeMismatch, err.a, err.b)
}
func (err mismatchError) Unwrap() error { return ErrTypeMismatch }

type inputError struct{ text string }

func (err inputError) Error() string { return fmt.Sprintf("%v %q", ErrInvalidInput, err.text) }
func (err inputError) Unwrap() error { return ErrInvalidInput }

type targetError struct {
	line, dest, max int
}

func (err targetError) Error() string {
	return fmt.Sprintf("%v: line %v jumps to line %v, outside 1..%v", ErrInvalidTarget, err.line, err.dest, err.max)
}
func (err targetError) Unwrap() error { return ErrInvalidTarget }

// arityError reports a statement with the wrong number of tokens.
type arityError struct {
	command string
	want    []int
	have    int
}

func (err arityError) Error() string {
	want := make([]string, len(err.want))
	for i, n := range err.want {
		want[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("%v: %v takes %v tokens, have %v",
		ErrMalformedStatement, err.command, strings.Join(want, " or "), err.have)
}
func (err arityError) Unwrap() error { return ErrMalformedStatement }

// ParseError locates a line that could not be assembled into a statement.
type ParseError struct {
	fileinput.Location
	Text string
	Err  error
}

func (err ParseError) Error() string { return fmt.Sprintf("%v: %v", err.Location, err.Err) }
func (err ParseError) Unwrap() error { return err.Err }

// RunError reports the statement that failed while running a program, and
// where it came from; the run halts with exactly one RunError.
type RunError struct {
	Pos  int // 0-based program position
	Stmt Statement
	Loc  fileinput.Location
	Err  error
}

// Line returns the 1-based program line of the failed statement.
func (err RunError) Line() int { return err.Pos + 1 }

func (err RunError) Error() string { return fmt.Sprintf("error at line %v: %v", err.Line(), err.Err) }
func (err RunError) Unwrap() error { return err.Err }

// Format adds the failed statement and its source location under "%+v".
func (err RunError) Format(f fmt.State, c rune) {
	fmt.Fprint(f, err.Error())
	if c == 'v' && f.Flag('+') {
		if err.Stmt != nil {
			fmt.Fprintf(f, "\n\tin: %v", err.Stmt)
		}
		if err.Loc.Name != "" {
			fmt.Fprintf(f, "\n\tat: %v", err.Loc)
		}
	}
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }
