package main

import (
	"fmt"
	"strings"
)

// Statement is one of the nine GRIN statement forms below; the set is closed,
// and the VM executes each form in a single type switch.
type Statement interface {
	fmt.Stringer
	statement()
}

// Assign is `LET target source`.
type Assign struct{ Target, Source Token }

// Print is `PRINT source`.
type Print struct{ Source Token }

// ReadNumber is `INNUM target`.
type ReadNumber struct{ Target Token }

// ReadText is `INSTR target`.
type ReadText struct{ Target Token }

// Arithmetic is `ADD|SUB|MULT|DIV target source`, updating target in place.
type Arithmetic struct {
	Op             ArithOp
	Target, Source Token
}

// Jump is `GOTO target [IF left op right]`.
type Jump struct {
	Target Token
	Cond   *Condition
}

// Call is `GOSUB target [IF left op right]`.
type Call struct {
	Target Token
	Cond   *Condition
}

// Return is `RETURN`.
type Return struct{}

// Halt is `END`.
type Halt struct{}

// Condition guards a Jump or Call.
type Condition struct {
	Left  Token
	Op    CompareOp
	Right Token
}

func (Assign) statement()     {}
func (Print) statement()      {}
func (ReadNumber) statement() {}
func (ReadText) statement()   {}
func (Arithmetic) statement() {}
func (Jump) statement()       {}
func (Call) statement()       {}
func (Return) statement()     {}
func (Halt) statement()       {}

func (st Assign) String() string     { return fmt.Sprintf("LET %v %v", st.Target, st.Source) }
func (st Print) String() string      { return fmt.Sprintf("PRINT %v", st.Source) }
func (st ReadNumber) String() string { return fmt.Sprintf("INNUM %v", st.Target) }
func (st ReadText) String() string   { return fmt.Sprintf("INSTR %v", st.Target) }
func (st Arithmetic) String() string { return fmt.Sprintf("%v %v %v", st.Op, st.Target, st.Source) }
func (st Jump) String() string       { return branchString("GOTO", st.Target, st.Cond) }
func (st Call) String() string       { return branchString("GOSUB", st.Target, st.Cond) }
func (Return) String() string        { return "RETURN" }
func (Halt) String() string          { return "END" }

func (cond Condition) String() string {
	return fmt.Sprintf("%v %v %v", cond.Left, cond.Op, cond.Right)
}

func branchString(command string, target Token, cond *Condition) string {
	var sb strings.Builder
	sb.WriteString(command)
	sb.WriteByte(' ')
	sb.WriteString(target.Text)
	if cond != nil {
		sb.WriteString(" IF ")
		sb.WriteString(cond.String())
	}
	return sb.String()
}
