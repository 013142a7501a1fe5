package fileinput

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gogrin/internal/runeio"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential rune and line reading through a Queue of one or
// more input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// New returns an Input that reads through the given streams in order.
func New(rs ...io.Reader) *Input {
	return &Input{Queue: rs}
}

// Location returns the location of the last line read.
func (in *Input) Location() Location { return in.Last.Location }

// ReadRune reads one rune from the current input stream, appending it into the
// current Scan line, and rolling Scan over to Last after line feed.
// Reaching the end of one queued stream yields a 0 rune with a nil error;
// io.EOF is returned only after the last stream is exhausted.
func (in *Input) ReadRune() (rune, int, error) {
	if in.rr == nil && !in.nextIn() {
		return 0, 0, io.EOF
	}

	r, n, err := in.rr.ReadRune()
	if err == nil {
		if r == '\n' {
			in.nextLine()
		} else {
			in.Scan.WriteRune(r)
		}
		return r, n, nil
	}

	if err == io.EOF && in.nextIn() {
		err = nil
	}
	return 0, n, err
}

// ReadLine reads through the next line feed, or the end of the current
// stream, returning the line content without its terminator (any trailing
// carriage return is dropped as well).
func (in *Input) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := in.ReadRune()
		switch {
		case r == '\n':
			return strings.TrimSuffix(sb.String(), "\r"), nil
		case r != 0:
			sb.WriteRune(r)
		case err != nil:
			if err == io.EOF && sb.Len() > 0 {
				return strings.TrimSuffix(sb.String(), "\r"), nil
			}
			return "", err
		case sb.Len() > 0:
			// stream boundary terminates a partial line
			return strings.TrimSuffix(sb.String(), "\r"), nil
		}
	}
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) nextIn() bool {
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			cl.Close()
		}
		in.rr = nil
	}
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
