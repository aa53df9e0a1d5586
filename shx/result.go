package shx

import (
	"bytes"
	"io"
	"os"
	"strings"
)

// Result holds the outcome of running a command. Output is buffered in
// memory: everything this tool captures (git status, tag lists, OTP codes)
// is tiny.
type Result struct {
	stdout *bytes.Buffer

	exitErr      error
	processState *os.ProcessState
}

func (r *Result) Err() error {
	return r.exitErr
}

// Stdout returns a reader over the captured output.
//
// If output was not captured, this returns nil.
func (r *Result) Stdout() io.Reader {
	if r.stdout == nil {
		return nil
	}
	return bytes.NewReader(r.stdout.Bytes())
}

// String returns the captured output verbatim, for callers that parse it
// line by line and need leading whitespace intact.
func (r *Result) String() string {
	if r.stdout == nil {
		return ""
	}
	return r.stdout.String()
}

// Text returns the captured output with surrounding whitespace trimmed, which
// is the form almost every caller wants for single-value command output.
func (r *Result) Text() string {
	if r.stdout == nil {
		return ""
	}
	return strings.TrimSpace(r.stdout.String())
}
