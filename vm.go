package main

import (
	"context"
	"fmt"
	"math"
)

// VM runs one assembled GRIN program against a line input and output.
type VM struct {
	ioCore
	source LineReader

	prog    Program
	loaded  bool
	loadErr error

	vars      Variables
	calls     []int
	pos       int
	callLimit int
}

// SignalKind tells the run loop how to move after a statement.
type SignalKind uint8

// Signal kinds; the zero Signal continues at the next statement.
const (
	SignalContinue SignalKind = iota
	SignalJump
	SignalCall
	SignalReturn
	SignalHalt
)

var signalNames = [...]string{"continue", "jump", "call", "return", "halt"}

func (kind SignalKind) String() string {
	if int(kind) < len(signalNames) {
		return signalNames[kind]
	}
	return fmt.Sprintf("SignalKind(%d)", kind)
}

// Signal is the control outcome of executing one statement.
type Signal struct {
	Kind SignalKind
	Dest Destination
}

// Destination is where a jump or call goes: either a label, resolved against
// the program when the signal is applied, or an absolute position.
type Destination struct {
	Label string
	Pos   int
}

func (dest Destination) String() string {
	if dest.Label != "" {
		return fmt.Sprintf("%q", dest.Label)
	}
	return fmt.Sprintf("@%v", dest.Pos)
}

func (vm *VM) halt(err error) {
	if ferr := vm.out.Flush(); err == nil {
		err = ferr
	}
	if err == nil {
		vm.logf("halt", "@%v", vm.pos)
	} else {
		vm.logf("halt", "@%v error: %v", vm.pos, err)
	}
	panic(haltError{err})
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}

func (vm *VM) run(ctx context.Context) error {
	vm.logf("run", "%v statements", vm.prog.Len())
	for vm.pos < vm.prog.Len() {
		vm.haltif(ctx.Err())
		vm.step()
	}
	vm.halt(nil)
	return nil
}

// step executes the statement at the current position, and then applies its
// signal; any failure halts the VM with a RunError.
func (vm *VM) step() {
	at := vm.pos
	ent := vm.prog.At(at)
	if ent.Label != "" {
		vm.logf("exec", "@%v %v: %v", at, ent.Label, ent.Stmt)
	} else {
		vm.logf("exec", "@%v %v", at, ent.Stmt)
	}
	sig, err := vm.execute(ent.Stmt)
	if err == nil {
		err = vm.apply(at, sig)
	}
	if err != nil {
		vm.halt(RunError{Pos: at, Stmt: ent.Stmt, Loc: ent.Loc, Err: err})
	}
}

func (vm *VM) execute(stmt Statement) (Signal, error) {
	switch st := stmt.(type) {
	case Assign:
		val, err := vm.vars.resolve(st.Source)
		if err != nil {
			return Signal{}, err
		}
		vm.vars.Set(st.Target.Text, val)

	case Print:
		val, err := vm.vars.resolve(st.Source)
		if err != nil {
			return Signal{}, err
		}
		if err := vm.writeLine(val.String()); err != nil {
			return Signal{}, err
		}

	case ReadNumber:
		line, err := vm.readLine()
		if err != nil {
			return Signal{}, err
		}
		val, err := ParseNumber(line)
		if err != nil {
			return Signal{}, err
		}
		vm.vars.Set(st.Target.Text, val)

	case ReadText:
		line, err := vm.readLine()
		if err != nil {
			return Signal{}, err
		}
		vm.vars.Set(st.Target.Text, Text(line))

	case Arithmetic:
		cur, err := vm.vars.Get(st.Target.Text)
		if err != nil {
			return Signal{}, err
		}
		operand, err := vm.vars.resolve(st.Source)
		if err != nil {
			return Signal{}, err
		}
		res, err := Arith(st.Op, cur, operand)
		if err != nil {
			return Signal{}, err
		}
		vm.vars.Set(st.Target.Text, res)

	case Jump:
		dest, taken, err := vm.branch(st.Target, st.Cond)
		if !taken || err != nil {
			return Signal{}, err
		}
		return Signal{Kind: SignalJump, Dest: dest}, nil

	case Call:
		dest, taken, err := vm.branch(st.Target, st.Cond)
		if !taken || err != nil {
			return Signal{}, err
		}
		return Signal{Kind: SignalCall, Dest: dest}, nil

	case Return:
		return Signal{Kind: SignalReturn}, nil

	case Halt:
		return Signal{Kind: SignalHalt}, nil

	default:
		panic(fmt.Sprintf("invalid statement type %T", stmt))
	}
	return Signal{}, nil
}

// branch evaluates an optional condition, and then the target of a taken
// jump or call.
func (vm *VM) branch(target Token, cond *Condition) (dest Destination, taken bool, err error) {
	if cond != nil {
		left, err := vm.vars.resolve(cond.Left)
		if err != nil {
			return dest, false, err
		}
		right, err := vm.vars.resolve(cond.Right)
		if err != nil {
			return dest, false, err
		}
		if taken, err = Compare(cond.Op, left, right); !taken || err != nil {
			return dest, false, err
		}
	}
	dest, err = vm.destination(target)
	return dest, err == nil, err
}

// destination resolves a jump target. Text names a label; a number is an
// offset relative to the current line, with floats truncated. An identifier
// stands for its value when assigned, and otherwise, like a keyword, names a
// label by its own text.
func (vm *VM) destination(target Token) (Destination, error) {
	val := target.Value
	switch target.Kind {
	case TokenKeyword:
		return Destination{Label: target.Text}, nil
	case TokenIdentifier:
		v, ok := vm.vars.Lookup(target.Text)
		if !ok {
			return Destination{Label: target.Text}, nil
		}
		val = v
	}

	switch val.Kind() {
	case TextValue:
		if val.Text() == "" {
			return Destination{}, nameError{ErrUnknownLabel, `""`}
		}
		return Destination{Label: val.Text()}, nil
	case IntegerValue:
		return vm.relative(val.Integer())
	case FloatValue:
		if f := val.Float(); !math.IsNaN(f) && !math.IsInf(f, 0) {
			return vm.relative(int64(math.Max(math.Min(f, math.MaxInt32), math.MinInt32)))
		}
	}
	return Destination{}, operandError{ErrInvalidTarget, val}
}

// relative resolves an offset from the current line; the destination may be
// any line of the program, or one past its end, which finishes the run.
func (vm *VM) relative(offset int64) (Destination, error) {
	line := vm.pos + 1
	last := vm.prog.Len() + 1
	if offset < -int64(last) || offset > int64(last) {
		return Destination{}, targetError{line, clampInt(offset), last}
	}
	dest := line + int(offset)
	if dest < 1 || dest > last {
		return Destination{}, targetError{line, dest, last}
	}
	return Destination{Pos: dest - 1}, nil
}

func clampInt(n int64) int {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	}
	return int(n)
}

func (vm *VM) locate(dest Destination) (int, error) {
	if dest.Label == "" {
		return dest.Pos, nil
	}
	pos, ok := vm.prog.Lookup(dest.Label)
	if !ok {
		return 0, nameError{ErrUnknownLabel, dest.Label}
	}
	return pos, nil
}

// apply moves the VM after executing the statement at position at. On error
// the position and call stack are left as they were.
func (vm *VM) apply(at int, sig Signal) error {
	switch sig.Kind {
	case SignalContinue:
		vm.pos = at + 1

	case SignalJump:
		pos, err := vm.locate(sig.Dest)
		if err != nil {
			return err
		}
		vm.logf("jump", "%v -> @%v", sig.Dest, pos)
		vm.pos = pos

	case SignalCall:
		pos, err := vm.locate(sig.Dest)
		if err != nil {
			return err
		}
		if vm.callLimit > 0 && len(vm.calls) >= vm.callLimit {
			return fmt.Errorf("%w (limit %v)", ErrCallDepthExceeded, vm.callLimit)
		}
		vm.calls = append(vm.calls, at+1)
		vm.logf("call", "%v -> @%v calls:%v", sig.Dest, pos, vm.calls)
		vm.pos = pos

	case SignalReturn:
		i := len(vm.calls) - 1
		if i < 0 {
			return ErrUnbalancedReturn
		}
		vm.pos = vm.calls[i]
		vm.calls = vm.calls[:i]
		vm.logf("return", "-> @%v calls:%v", vm.pos, vm.calls)

	case SignalHalt:
		vm.halt(nil)

	default:
		panic(fmt.Sprintf("invalid signal %v", sig.Kind))
	}
	return nil
}
