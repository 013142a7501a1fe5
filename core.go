package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gogrin/internal/flushio"
	"github.com/jcorbin/gogrin/internal/runeio"
)

type ioCore struct {
	logging
	in      LineReader
	out     flushio.WriteFlusher
	closers []io.Closer
}

func (ioc *ioCore) Close() (err error) {
	if ioc.out != nil {
		err = ioc.out.Flush()
	}
	for i := len(ioc.closers) - 1; i >= 0; i-- {
		if cerr := ioc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	ioc.closers = nil
	return err
}

// readLine flushes any pending output, so that prompts are seen, before
// blocking on a line of input. Running out of input is unexpected, since
// only INNUM and INSTR ask for it.
func (ioc *ioCore) readLine() (string, error) {
	if err := ioc.out.Flush(); err != nil {
		return "", err
	}
	line, err := ioc.in.ReadLine()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return "", err
	}
	ioc.logf("<", "%q", line)
	return line, nil
}

func (ioc *ioCore) writeLine(s string) error {
	ioc.logf(">", "%q", s)
	_, err := runeio.WriteANSILine(ioc.out, s)
	return err
}

type logging struct {
	logfn     func(mess string, args ...interface{})
	markWidth int
}

// logf logs a message under a short mark, like "exec" or ">", padding marks
// to the widest one seen so far so that messages line up.
func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(" ", n) + mark
	} else {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
