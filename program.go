package main

import (
	"github.com/google/btree"

	"github.com/jcorbin/gogrin/internal/fileinput"
)

// Entry is one assembled program line: an optional label, its statement, and
// where it was read from.
type Entry struct {
	Label string
	Stmt  Statement
	Loc   fileinput.Location
}

// Program is an append-only statement list plus a label index. A label maps
// to the position its entry was appended at; defining a label again shadows
// the earlier definition.
type Program struct {
	entries []Entry
	labels  *btree.BTreeG[labelPos]
}

type labelPos struct {
	name string
	pos  int
}

func labelLess(a, b labelPos) bool { return a.name < b.name }

// Append adds ent at the end of the program, indexing its label. If the label
// was already defined, the earlier position is returned along with true.
func (prog *Program) Append(ent Entry) (shadowed int, redefined bool) {
	pos := len(prog.entries)
	if ent.Label != "" {
		if prog.labels == nil {
			prog.labels = btree.NewG(8, labelLess)
		}
		if prior, had := prog.labels.ReplaceOrInsert(labelPos{ent.Label, pos}); had {
			shadowed, redefined = prior.pos, true
		}
	}
	prog.entries = append(prog.entries, ent)
	return shadowed, redefined
}

// Add appends an unlocated statement, as a convenience for building programs
// in code.
func (prog *Program) Add(label string, stmt Statement) *Program {
	prog.Append(Entry{Label: label, Stmt: stmt})
	return prog
}

// Len returns the number of statements.
func (prog *Program) Len() int { return len(prog.entries) }

// At returns the entry at position pos.
func (prog *Program) At(pos int) Entry { return prog.entries[pos] }

// Lookup returns the position a label refers to.
func (prog *Program) Lookup(label string) (int, bool) {
	if prog.labels == nil {
		return 0, false
	}
	lp, ok := prog.labels.Get(labelPos{name: label})
	return lp.pos, ok
}

// Labels calls each with every label and its position, in label order,
// until each returns false.
func (prog *Program) Labels(each func(label string, pos int) bool) {
	if prog.labels == nil {
		return
	}
	prog.labels.Ascend(func(lp labelPos) bool {
		return each(lp.name, lp.pos)
	})
}
