package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gogrin/internal/fileinput"
)

func TestParseLine(t *testing.T) {
	for _, tc := range []struct {
		text  string
		label string
		stmt  string
	}{
		{`LET A 5`, "", `LET A 5`},
		{`X : LET A 5`, "X", `LET A 5`},
		{`SUB: PRINT "hi"`, "SUB", `PRINT "hi"`},
		{`INNUM N`, "", `INNUM N`},
		{`INSTR S`, "", `INSTR S`},
		{`ADD A B`, "", `ADD A B`},
		{`SUB A 1`, "", `SUB A 1`},
		{`MULT A 2.5`, "", `MULT A 2.5`},
		{`DIV A -3`, "", `DIV A -3`},
		{`GOTO LOOP`, "", `GOTO LOOP`},
		{`GOTO "LOOP" IF A <> 0`, "", `GOTO "LOOP" IF A <> 0`},
		{`GOSUB -2 IF A >= B`, "", `GOSUB -2 IF A >= B`},
		{`  RETURN  `, "", `RETURN`},
		{`DONE:END`, "DONE", `END`},
	} {
		t.Run(tc.text, func(t *testing.T) {
			label, stmt, err := ParseLine(1, tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.label, label, "expected label")
			assert.Equal(t, tc.stmt, stmt.String(), "expected statement")
		})
	}
}

func TestParseLine_variants(t *testing.T) {
	_, stmt, err := ParseLine(1, `GOSUB S IF A < 10`)
	require.NoError(t, err)
	call, ok := stmt.(Call)
	require.True(t, ok, "expected a Call, got %T", stmt)
	assert.Equal(t, "S", call.Target.Text)
	if assert.NotNil(t, call.Cond) {
		assert.Equal(t, CmpLess, call.Cond.Op)
		assert.Equal(t, Integer(10), call.Cond.Right.Value)
	}

	_, stmt, err = ParseLine(1, `DIV A 2`)
	require.NoError(t, err)
	assert.Equal(t, OpDiv, stmt.(Arithmetic).Op)

	_, stmt, err = ParseLine(1, `GOTO 3`)
	require.NoError(t, err)
	assert.Nil(t, stmt.(Jump).Cond)
}

func TestParseLine_malformed(t *testing.T) {
	for _, text := range []string{
		`LET A`,
		`LET A 1 2`,
		`LET 1 2`,
		`LET "A" 2`,
		`PRINT`,
		`PRINT A B`,
		`PRINT =`,
		`INNUM 5`,
		`INSTR`,
		`ADD A`,
		`ADD 1 A`,
		`DIV A <`,
		`GOTO`,
		`GOTO A IF`,
		`GOTO A IF B <`,
		`GOTO A WHEN B < 1`,
		`GOTO A IF B + 1`,
		`GOTO A IF B C 1`,
		`GOTO =`,
		`GOSUB A B`,
		`RETURN 1`,
		`END NOW`,
		`FROB A`,
		`A B`,
		`5: PRINT 1`,
		`L:`,
		`PRINT "x`,
	} {
		_, _, err := ParseLine(1, text)
		assert.True(t, errors.Is(err, ErrMalformedStatement), "ParseLine(%q) expected malformed statement, got %v", text, err)
	}
}

func TestAssemble(t *testing.T) {
	var prog Program
	in := fileinput.New(namedReader{"test.grin", strings.NewReader(lines(
		`LET A 1`,
		``,
		`TOP: PRINT A`,
		`GOTO TOP`,
		` . `,
		`not program text`,
	))})
	require.NoError(t, Assemble(in, &prog))
	assert.Equal(t, 3, prog.Len())

	pos, ok := prog.Lookup("TOP")
	assert.True(t, ok)
	assert.Equal(t, 1, pos)

	ent := prog.At(1)
	assert.Equal(t, "TOP", ent.Label)
	assert.Equal(t, "PRINT A", ent.Stmt.String())
	assert.Equal(t, "test.grin:3", ent.Loc.String())

	rest, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "not program text", rest, "expected input after the end of program line")
}

func TestAssemble_errors(t *testing.T) {
	var prog Program
	err := Assemble(fileinput.New(namedReader{"bad.grin", strings.NewReader(lines(
		`PRINT 1`,
		`LET A`,
		`PRINT 2`,
		`GOTO "x`,
	))}), &prog)

	var locs []string
	for _, one := range err.(interface{ Unwrap() []error }).Unwrap() {
		var perr ParseError
		if assert.True(t, errors.As(one, &perr)) {
			locs = append(locs, perr.Location.String())
		}
		assert.True(t, errors.Is(one, ErrMalformedStatement))
	}
	assert.Equal(t, []string{"bad.grin:2", "bad.grin:4"}, locs)
	assert.Equal(t, 2, prog.Len(), "expected good lines to still be assembled")
}

type sliceLines []string

func (sl *sliceLines) ReadLine() (string, error) {
	if len(*sl) == 0 {
		return "", errors.New("read past the end")
	}
	line := (*sl)[0]
	*sl = (*sl)[1:]
	return line, nil
}

func TestAssemble_lineReader(t *testing.T) {
	var prog Program
	in := sliceLines{`PRINT 1`, `PRINT`, `.`}
	err := Assemble(&in, &prog)

	var perr ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Location.Line, "expected counted line number without a locator")
	assert.Equal(t, `PRINT`, perr.Text)
	assert.Empty(t, in)
}
