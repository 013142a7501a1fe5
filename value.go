package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind tags the dynamic type of a Value.
type ValueKind uint8

const (
	NoValue ValueKind = iota
	IntegerValue
	FloatValue
	TextValue
)

func (kind ValueKind) String() string {
	switch kind {
	case IntegerValue:
		return "integer"
	case FloatValue:
		return "float"
	case TextValue:
		return "text"
	default:
		return "nothing"
	}
}

// Value is a dynamically typed GRIN scalar: a 64-bit integer, a 64-bit float,
// or text. The zero Value holds nothing, and is never stored in a variable.
type Value struct {
	kind  ValueKind
	num   int64
	float float64
	text  string
}

func Integer(i int64) Value { return Value{kind: IntegerValue, num: i} }
func Float(f float64) Value { return Value{kind: FloatValue, float: f} }
func Text(s string) Value   { return Value{kind: TextValue, text: s} }

// Kind returns the dynamic type of v.
func (v Value) Kind() ValueKind { return v.kind }

// Integer returns the payload of an integer value.
func (v Value) Integer() int64 { return v.num }

// Float returns the payload of a float value.
func (v Value) Float() float64 { return v.float }

// Text returns the payload of a text value.
func (v Value) Text() string { return v.text }

// IsNumeric returns true for integer and float values.
func (v Value) IsNumeric() bool { return v.kind == IntegerValue || v.kind == FloatValue }

// IsZero returns true for numeric zero of either kind.
func (v Value) IsZero() bool {
	switch v.kind {
	case IntegerValue:
		return v.num == 0
	case FloatValue:
		return v.float == 0
	}
	return false
}

// AsFloat promotes a numeric value to float64.
func (v Value) AsFloat() float64 {
	if v.kind == IntegerValue {
		return float64(v.num)
	}
	return v.float
}

// String formats v as PRINT writes it; floats always carry a decimal point
// or an exponent, so that 8.0 and 8 remain distinguishable.
func (v Value) String() string {
	switch v.kind {
	case IntegerValue:
		return strconv.FormatInt(v.num, 10)
	case FloatValue:
		return formatFloat(v.float)
	case TextValue:
		return v.text
	default:
		return ""
	}
}

// GoString renders the value along with its kind, quoting text.
func (v Value) GoString() string {
	if v.kind == TextValue {
		return strconv.Quote(v.text)
	}
	if v.kind == NoValue {
		return "<nothing>"
	}
	return v.String()
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// ArithOp names one of the four arithmetic statements.
type ArithOp uint8

const (
	OpAdd ArithOp = iota + 1
	OpSub
	OpMult
	OpDiv
)

var arithOps = map[string]ArithOp{
	"ADD":  OpAdd,
	"SUB":  OpSub,
	"MULT": OpMult,
	"DIV":  OpDiv,
}

func (op ArithOp) String() string {
	for name, o := range arithOps {
		if o == op {
			return name
		}
	}
	return fmt.Sprintf("ArithOp(%d)", uint8(op))
}

// Arith combines a and b under op. Both must be numeric; an integer and a
// float are promoted to float, while like kinds keep their kind. Integer
// division floors, and any division by zero is an error.
func Arith(op ArithOp, a, b Value) (Value, error) {
	if !a.IsNumeric() {
		return Value{}, operandError{ErrNonNumericOperand, a}
	}
	if !b.IsNumeric() {
		return Value{}, operandError{ErrNonNumericOperand, b}
	}
	if op == OpDiv && b.IsZero() {
		return Value{}, ErrDivisionByZero
	}

	if a.kind == IntegerValue && b.kind == IntegerValue {
		x, y := a.num, b.num
		switch op {
		case OpAdd:
			return Integer(x + y), nil
		case OpSub:
			return Integer(x - y), nil
		case OpMult:
			return Integer(x * y), nil
		case OpDiv:
			q := x / y
			if x%y != 0 && (x < 0) != (y < 0) {
				q--
			}
			return Integer(q), nil
		}
	} else {
		x, y := a.AsFloat(), b.AsFloat()
		switch op {
		case OpAdd:
			return Float(x + y), nil
		case OpSub:
			return Float(x - y), nil
		case OpMult:
			return Float(x * y), nil
		case OpDiv:
			return Float(x / y), nil
		}
	}
	return Value{}, fmt.Errorf("invalid arithmetic operator %v", op)
}

// CompareOp is a condition operator.
type CompareOp uint8

const (
	CmpLess CompareOp = iota + 1
	CmpLessEqual
	CmpGreater
	CmpGreaterEqual
	CmpEqual
	CmpNotEqual
)

var compareOps = map[string]CompareOp{
	"<":  CmpLess,
	"<=": CmpLessEqual,
	">":  CmpGreater,
	">=": CmpGreaterEqual,
	"=":  CmpEqual,
	"<>": CmpNotEqual,
}

func (op CompareOp) String() string {
	for s, o := range compareOps {
		if o == op {
			return s
		}
	}
	return fmt.Sprintf("CompareOp(%d)", uint8(op))
}

// Compare evaluates a op b. Values of the same kind use their natural
// order; an integer and a float compare as floats; any other mix is a type
// mismatch.
func Compare(op CompareOp, a, b Value) (bool, error) {
	var c int
	switch {
	case a.kind == b.kind && a.kind == IntegerValue:
		c = cmp3(a.num < b.num, a.num > b.num)
	case a.kind == b.kind && a.kind == TextValue:
		c = strings.Compare(a.text, b.text)
	case a.IsNumeric() && b.IsNumeric():
		x, y := a.AsFloat(), b.AsFloat()
		if math.IsNaN(x) || math.IsNaN(y) {
			return op == CmpNotEqual, nil
		}
		c = cmp3(x < y, x > y)
	default:
		return false, mismatchError{a.kind, b.kind}
	}

	switch op {
	case CmpLess:
		return c < 0, nil
	case CmpLessEqual:
		return c <= 0, nil
	case CmpGreater:
		return c > 0, nil
	case CmpGreaterEqual:
		return c >= 0, nil
	case CmpEqual:
		return c == 0, nil
	case CmpNotEqual:
		return c != 0, nil
	}
	return false, fmt.Errorf("invalid comparison operator %v", op)
}

func cmp3(less, more bool) int {
	if less {
		return -1
	} else if more {
		return 1
	}
	return 0
}

// ParseNumber parses a line of numeric input: text containing a decimal
// point is a float, anything else an integer.
func ParseNumber(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsRune(s, '.') {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, inputError{s}
		}
		return Float(f), nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, inputError{s}
	}
	return Integer(i), nil
}
