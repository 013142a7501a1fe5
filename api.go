package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/gogrin/internal/panicerr"
)

// New creates a VM; by default it reads program text and input from an
// empty stream, and discards output.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts).apply(&vm)
	return &vm
}

// Load assembles the program from the VM's source, which is its input unless
// WithSource was given, reading up to the "." line. Every malformed line is
// reported in the returned error; a program with any malformed line is not
// runnable.
func (vm *VM) Load() error {
	src := vm.source
	if src == nil {
		src = vm.in
	}
	var prog Program
	err := assemble(src, &prog, vm.logf)
	vm.prog = prog
	vm.loaded, vm.loadErr = true, err
	return err
}

// Run executes the program, loading it first if needed; a program that
// failed to load never runs. Running continues until END, the end
// of the program, the first run time error, or ctx is done.
// Any run time error is a RunError.
func (vm *VM) Run(ctx context.Context) error {
	if !vm.loaded {
		vm.Load()
	}
	if vm.loadErr != nil {
		return vm.loadErr
	}
	err := panicerr.Recover("VM", func() error {
		return vm.run(ctx)
	})
	var halt haltError
	if errors.As(err, &halt) {
		err = halt.error
	}
	return err
}

// Dump writes a description of the VM state: its position, call stack,
// labels, variables, and program listing.
func (vm *VM) Dump(w io.Writer) {
	vmDumper{vm: vm, out: w}.dump()
}

func WithInput(r io.Reader) VMOption       { return withInput(r) }
func WithLineInput(lr LineReader) VMOption { return withLineInput(lr) }
func WithSource(r io.Reader) VMOption      { return withSource(r) }
func WithOutput(w io.Writer) VMOption      { return withOutput(w) }
func WithTee(w io.Writer) VMOption         { return withTee(w) }
func WithCallLimit(limit int) VMOption     { return withCallLimit(limit) }
func WithProgram(prog *Program) VMOption   { return withProgram(prog) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
