package main

import (
	"io"
	"strings"

	"github.com/jcorbin/gogrin/internal/fileinput"
	"github.com/jcorbin/gogrin/internal/flushio"
)

// VMOption configures a VM.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines options, applying them in order; nil options are
// skipped.
type VMOptions []VMOption

func (opts VMOptions) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

var defaultOptions = VMOptions{
	withInput(strings.NewReader("")),
	withOutput(io.Discard),
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type lineInputOption struct{ LineReader }
type sourceOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type callLimitOption int
type programOption struct{ *Program }

func withInput(r io.Reader) inputOption           { return inputOption{r} }
func withLineInput(lr LineReader) lineInputOption { return lineInputOption{lr} }
func withSource(r io.Reader) sourceOption         { return sourceOption{r} }
func withOutput(w io.Writer) outputOption         { return outputOption{w} }
func withTee(w io.Writer) teeOption               { return teeOption{w} }
func withCallLimit(limit int) callLimitOption     { return callLimitOption(limit) }
func withProgram(prog *Program) programOption     { return programOption{prog} }

func (i inputOption) apply(vm *VM) {
	vm.in = fileinput.New(i.Reader)
}

func (i lineInputOption) apply(vm *VM) {
	vm.in = i.LineReader
	if cl, ok := i.LineReader.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (s sourceOption) apply(vm *VM) {
	vm.source = fileinput.New(s.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (lim callLimitOption) apply(vm *VM) {
	vm.callLimit = int(lim)
}

func (p programOption) apply(vm *VM) {
	vm.prog = *p.Program
	vm.loaded, vm.loadErr = true, nil
}
