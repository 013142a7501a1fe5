package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/gogrin/internal/runeio"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	posWidth int
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  pos: %v\n", dump.vm.pos)
	fmt.Fprintf(dump.out, "  calls: %v\n", dump.vm.calls)

	if dump.posWidth == 0 {
		dump.posWidth = len(strconv.Itoa(dump.vm.prog.Len())) + 1
	}
	dump.dumpLabels()
	dump.dumpVars()
	dump.dumpProg()
}

func (dump *vmDumper) dumpLabels() {
	var buf lineBuffer
	header := false
	dump.vm.prog.Labels(func(label string, pos int) bool {
		if !header {
			header = true
			fmt.Fprintf(&buf, "# Labels")
			buf.WriteTo(dump.out)
		}
		fmt.Fprintf(&buf, "  @% *v %v", dump.posWidth, pos, label)
		buf.WriteTo(dump.out)
		return true
	})
}

func (dump *vmDumper) dumpVars() {
	names := dump.vm.vars.Names()
	if len(names) == 0 {
		return
	}
	var buf lineBuffer
	fmt.Fprintf(&buf, "# Variables")
	buf.WriteTo(dump.out)
	for _, name := range names {
		val, _ := dump.vm.vars.Lookup(name)
		fmt.Fprintf(&buf, "  %v = ", name)
		if val.Kind() == TextValue {
			buf.WriteString(runeio.Quote(val.Text()))
		} else {
			buf.WriteString(val.String())
		}
		buf.WriteTo(dump.out)
	}
}

func (dump *vmDumper) dumpProg() {
	var buf lineBuffer
	fmt.Fprintf(&buf, "# Program")
	buf.WriteTo(dump.out)
	for pos := 0; pos < dump.vm.prog.Len(); pos++ {
		ent := dump.vm.prog.At(pos)
		mark := ' '
		if pos == dump.vm.pos {
			mark = '>'
		}
		fmt.Fprintf(&buf, "%c @% *v ", mark, dump.posWidth, pos)
		if ent.Label != "" {
			fmt.Fprintf(&buf, "%v: ", ent.Label)
		}
		fmt.Fprintf(&buf, "%v", ent.Stmt)
		buf.WriteTo(dump.out)
	}
	if dump.vm.pos >= dump.vm.prog.Len() {
		fmt.Fprintf(&buf, "> @% *v", dump.posWidth, dump.vm.pos)
		buf.WriteTo(dump.out)
	}
}

// lineBuffer accumulates one line of dump output, adding its line feed when
// written out.
type lineBuffer struct{ bytes.Buffer }

func (buf *lineBuffer) WriteTo(w io.Writer) (int64, error) {
	buf.WriteByte('\n')
	return buf.Buffer.WriteTo(w)
}
