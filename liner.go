package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jcorbin/gogrin/internal/fileinput"
)

// terminalInput reads lines from an interactive terminal with editing and
// history; it prompts with line numbers until the program's "." line, and
// then without a prompt for run time input. Given a program file, only run
// time input is read.
type terminalInput struct {
	state   *liner.State
	history string
	line    int
	running bool
}

func newTerminalInput(history string, running bool) *terminalInput {
	ti := &terminalInput{
		state:   liner.NewLiner(),
		history: history,
		running: running,
	}
	ti.state.SetCtrlCAborts(true)
	if ti.history != "" {
		if f, err := os.Open(ti.history); err == nil {
			_, _ = ti.state.ReadHistory(f)
			_ = f.Close()
		}
	}
	return ti
}

func (ti *terminalInput) ReadLine() (string, error) {
	line, err := ti.state.Prompt(ti.prompt())
	if errors.Is(err, liner.ErrPromptAborted) {
		err = io.EOF
	}
	if err != nil {
		return "", err
	}
	if ti.record(line) {
		ti.state.AppendHistory(line)
	}
	return line, nil
}

func (ti *terminalInput) prompt() string {
	if ti.running {
		return ""
	}
	return fmt.Sprintf("%3d> ", ti.line+1)
}

// record counts a line read, returning true if it belongs in history: only
// non-blank program lines do.
func (ti *terminalInput) record(line string) bool {
	ti.line++
	switch {
	case ti.running:
		return false
	case strings.TrimSpace(line) == EndOfProgram:
		ti.running = true
		return false
	}
	return strings.TrimSpace(line) != ""
}

func (ti *terminalInput) Location() fileinput.Location {
	return fileinput.Location{Name: "<terminal>", Line: ti.line}
}

func (ti *terminalInput) Close() error {
	if ti.history != "" {
		if f, err := os.Create(ti.history); err == nil {
			_, _ = ti.state.WriteHistory(f)
			_ = f.Close()
		}
	}
	return ti.state.Close()
}
