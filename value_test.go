package main

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArith(t *testing.T) {
	for _, tc := range []struct {
		name string
		op   ArithOp
		a, b Value
		want Value
		err  error
	}{
		{name: "int add", op: OpAdd, a: Integer(5), b: Integer(3), want: Integer(8)},
		{name: "int sub", op: OpSub, a: Integer(5), b: Integer(8), want: Integer(-3)},
		{name: "int mult", op: OpMult, a: Integer(-4), b: Integer(3), want: Integer(-12)},
		{name: "int div exact", op: OpDiv, a: Integer(12), b: Integer(4), want: Integer(3)},
		{name: "int div floors", op: OpDiv, a: Integer(7), b: Integer(2), want: Integer(3)},
		{name: "int div floors negative", op: OpDiv, a: Integer(-7), b: Integer(2), want: Integer(-4)},
		{name: "int div negative divisor", op: OpDiv, a: Integer(7), b: Integer(-2), want: Integer(-4)},
		{name: "int overflow wraps", op: OpAdd, a: Integer(math.MaxInt64), b: Integer(1), want: Integer(math.MinInt64)},
		{name: "float add", op: OpAdd, a: Float(1.5), b: Float(2.25), want: Float(3.75)},
		{name: "float div", op: OpDiv, a: Float(1), b: Float(4), want: Float(0.25)},
		{name: "int float promotes", op: OpMult, a: Integer(2), b: Float(1.5), want: Float(3)},
		{name: "float int promotes", op: OpDiv, a: Float(7), b: Integer(2), want: Float(3.5)},
		{name: "int div zero", op: OpDiv, a: Integer(1), b: Integer(0), err: ErrDivisionByZero},
		{name: "float div zero", op: OpDiv, a: Float(1), b: Float(0), err: ErrDivisionByZero},
		{name: "mixed div zero", op: OpDiv, a: Integer(1), b: Float(0), err: ErrDivisionByZero},
		{name: "text target", op: OpAdd, a: Text("a"), b: Integer(1), err: ErrNonNumericOperand},
		{name: "text operand", op: OpAdd, a: Integer(1), b: Text("a"), err: ErrNonNumericOperand},
		{name: "text div zero", op: OpDiv, a: Text("a"), b: Integer(0), err: ErrNonNumericOperand},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Arith(tc.op, tc.a, tc.b)
			if tc.err != nil {
				assert.True(t, errors.Is(err, tc.err), "expected %v, got %v", tc.err, err)
				return
			}
			if assert.NoError(t, err) {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	for _, tc := range []struct {
		name string
		op   CompareOp
		a, b Value
		want bool
		err  error
	}{
		{name: "int less", op: CmpLess, a: Integer(1), b: Integer(2), want: true},
		{name: "int less equal", op: CmpLessEqual, a: Integer(2), b: Integer(2), want: true},
		{name: "int greater", op: CmpGreater, a: Integer(1), b: Integer(2), want: false},
		{name: "int greater equal", op: CmpGreaterEqual, a: Integer(3), b: Integer(2), want: true},
		{name: "int equal", op: CmpEqual, a: Integer(3), b: Integer(3), want: true},
		{name: "int not equal", op: CmpNotEqual, a: Integer(3), b: Integer(3), want: false},
		{name: "mixed equal", op: CmpEqual, a: Integer(3), b: Float(3), want: true},
		{name: "mixed less", op: CmpLess, a: Float(2.5), b: Integer(3), want: true},
		{name: "text order", op: CmpLess, a: Text("abc"), b: Text("abd"), want: true},
		{name: "text equal", op: CmpEqual, a: Text("x"), b: Text("x"), want: true},
		{name: "nan never equal", op: CmpEqual, a: Float(math.NaN()), b: Float(math.NaN()), want: false},
		{name: "nan not equal", op: CmpNotEqual, a: Float(math.NaN()), b: Integer(1), want: true},
		{name: "text with int", op: CmpEqual, a: Text("1"), b: Integer(1), err: ErrTypeMismatch},
		{name: "float with text", op: CmpLess, a: Float(1), b: Text("1"), err: ErrTypeMismatch},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compare(tc.op, tc.a, tc.b)
			if tc.err != nil {
				assert.True(t, errors.Is(err, tc.err), "expected %v, got %v", tc.err, err)
				return
			}
			if assert.NoError(t, err) {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestValue_String(t *testing.T) {
	for _, tc := range []struct {
		val  Value
		want string
	}{
		{Integer(8), "8"},
		{Integer(-12), "-12"},
		{Float(8), "8.0"},
		{Float(-0.5), "-0.5"},
		{Float(3.75), "3.75"},
		{Float(1e-5), "1e-05"},
		{Float(1.5e20), "1.5e+20"},
		{Float(1e15), "1000000000000000.0"},
		{Float(math.Inf(1)), "inf"},
		{Float(math.NaN()), "nan"},
		{Text("hi there"), "hi there"},
		{Value{}, ""},
	} {
		assert.Equal(t, tc.want, tc.val.String(), "%#v", tc.val)
	}
}

func TestValue_accessors(t *testing.T) {
	assert.Equal(t, int64(-7), Integer(-7).Integer())
	assert.Equal(t, 2.5, Float(2.5).Float())
	assert.Equal(t, "LOOP", Text("LOOP").Text())
	assert.Equal(t, "", Integer(3).Text())
}

func TestParseNumber(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Value
	}{
		{"42", Integer(42)},
		{" -7 ", Integer(-7)},
		{"2.5", Float(2.5)},
		{"-0.25", Float(-0.25)},
		{"3.", Float(3)},
	} {
		got, err := ParseNumber(tc.in)
		if assert.NoError(t, err, "ParseNumber(%q)", tc.in) {
			assert.Equal(t, tc.want, got, "ParseNumber(%q)", tc.in)
		}
	}

	for _, in := range []string{"", "four", "1e3", "1.2.3", "99999999999999999999"} {
		_, err := ParseNumber(in)
		assert.True(t, errors.Is(err, ErrInvalidInput), "ParseNumber(%q) expected invalid input, got %v", in, err)
	}
}
