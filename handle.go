package ezmenulib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-colorable"
	"golang.org/x/term"
)

// Handle is the stream pair a prompting session runs against: one source of
// input lines and one output sink. A Handle is exclusively owned by the
// Values container or menu using it for the duration of a session; it is not
// safe for concurrent use.
//
// Any io.Reader/io.Writer pair works, which makes prompts fully testable
// with in-memory buffers:
//
//	h := ezmenulib.NewHandle(strings.NewReader("42\n"), &buf)
type Handle struct {
	in    *bufio.Reader
	out   io.Writer
	inFd  int // file descriptor of the input, -1 when not a file
	outFd int // file descriptor of the output, -1 when not a file
}

// NewHandle builds a Handle over the given reader and writer.
func NewHandle(r io.Reader, w io.Writer) *Handle {
	h := &Handle{
		in:    bufio.NewReader(r),
		out:   w,
		inFd:  -1,
		outFd: -1,
	}
	if f, ok := r.(*os.File); ok {
		h.inFd = int(f.Fd())
	}
	if f, ok := w.(*os.File); ok {
		h.outFd = int(f.Fd())
	}
	return h
}

// DefaultHandle returns a Handle over the standard input and output streams.
// On Windows the output is wrapped with go-colorable so ANSI escape
// sequences render correctly.
func DefaultHandle() *Handle {
	var out io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		out = colorable.NewColorableStdout()
	}
	h := NewHandle(os.Stdin, out)
	h.inFd = int(os.Stdin.Fd())
	h.outFd = int(os.Stdout.Fd())
	return h
}

// Writer returns the output side of the handle. Menu callbacks receive this
// writer; they must not retain it beyond the call.
func (h *Handle) Writer() io.Writer {
	return h.out
}

// WriteString writes s to the output sink. A write failure is fatal for the
// current prompt and is never retried.
func (h *Handle) WriteString(s string) error {
	if _, err := io.WriteString(h.out, s); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

// ReadLine reads exactly one logical line from the input stream and trims
// surrounding whitespace, so whitespace-only input reads as empty. Both LF
// and CRLF line endings are accepted. A read failure, including an exhausted
// stream, is fatal and never retried; a final line without a trailing
// newline is still delivered.
func (h *Handle) ReadLine() (string, error) {
	line, err := h.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// prompt shows the given text and reads one line of input.
func (h *Handle) prompt(text string) (string, error) {
	if err := h.WriteString(text); err != nil {
		return "", err
	}
	return h.ReadLine()
}

// Interactive reports whether both ends of the handle are real terminals.
// Callers can use it to skip prompting entirely in non-interactive runs.
func (h *Handle) Interactive() bool {
	return h.inFd >= 0 && h.outFd >= 0 &&
		term.IsTerminal(h.inFd) && term.IsTerminal(h.outFd)
}
