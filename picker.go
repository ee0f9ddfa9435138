package ezmenulib

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Picker turns a Selected specification into a full-screen-less interactive
// list: the terminal is switched to raw mode, arrow keys move a highlight
// through the choices, printable characters narrow the list with fuzzy
// matching, and Enter accepts the highlighted choice.
//
// A Picker needs a real terminal; when stdin is not one, fall back to
// Select, which works on any stream pair.
//
//	lic, err := ezmenulib.NewPicker(ezmenulib.NewSelected("select a license",
//		ezmenulib.NewChoice("MIT", MIT),
//		ezmenulib.NewChoice("GPL", GPL),
//		ezmenulib.NewChoice("BSD", BSD),
//	)).Run()
type Picker[T any] struct {
	sel    *Selected[T]
	scheme *ColorScheme
	fmt    Format

	// injected by tests, nil in production
	term terminalInterface
	out  io.Writer
}

// NewPicker builds an interactive picker over a choice specification. The
// specification's default choice, if any, is where the highlight starts.
func NewPicker[T any](sel *Selected[T]) *Picker[T] {
	return &Picker[T]{sel: sel, scheme: ThemeDefault, fmt: NewFormat()}
}

// Scheme sets the color scheme. The default is ThemeDefault.
func (p *Picker[T]) Scheme(s *ColorScheme) *Picker[T] {
	p.scheme = s
	return p
}

// Fmt sets the Format whose prefix and chip decorate the rendered list.
func (p *Picker[T]) Fmt(f Format) *Picker[T] {
	p.fmt = NewFormat().Merge(f)
	return p
}

// candidate is one choice surviving the current filter, remembering its
// position in the original choice list.
type candidate struct {
	label string
	index int
}

// matches returns the choices surviving the filter, best fuzzy rank first.
// An empty filter keeps every choice in declaration order.
func (p *Picker[T]) matches(filter string) []candidate {
	labels := make([]string, len(p.sel.choices))
	for i, c := range p.sel.choices {
		labels[i] = c.Label
	}
	if filter == "" {
		out := make([]candidate, len(labels))
		for i, l := range labels {
			out[i] = candidate{label: l, index: i}
		}
		return out
	}
	ranks := fuzzy.RankFindNormalizedFold(filter, labels)
	sort.Sort(ranks)
	out := make([]candidate, len(ranks))
	for i, r := range ranks {
		out[i] = candidate{label: r.Target, index: r.OriginalIndex}
	}
	return out
}

// render writes the message line, the filter, and the candidate list with
// the highlight marker. It returns the number of lines written so the next
// redraw knows how far to move the cursor back up. Raw mode needs explicit
// carriage returns, hence the \r\n endings.
func (p *Picker[T]) render(out io.Writer, filter string, cands []candidate, cursor, maxRows int) int {
	var b strings.Builder
	b.WriteString(p.scheme.Message.ToANSI())
	b.WriteString(p.fmt.prefix)
	b.WriteString(p.sel.msg)
	b.WriteString(Reset())
	if filter != "" {
		b.WriteString(" ")
		b.WriteString(p.fmt.left)
		b.WriteString(filter)
		b.WriteString(p.fmt.right)
	}
	b.WriteString("\r\n")
	lines := 1

	shown := cands
	if len(shown) > maxRows {
		shown = shown[:maxRows]
	}
	for i, c := range shown {
		if i == cursor {
			b.WriteString(p.scheme.Highlight.ToANSI())
			b.WriteString("> ")
		} else {
			b.WriteString(p.scheme.Label.ToANSI())
			b.WriteString("  ")
		}
		b.WriteString(c.label)
		b.WriteString(Reset())
		b.WriteString("\r\n")
		lines++
	}
	fmt.Fprint(out, b.String())
	return lines
}

// readEscape consumes the tail of an ANSI escape sequence and reports the
// final byte of a CSI sequence ('A' for up, 'B' for down), or 0 for
// anything else.
func readEscape(term terminalInterface) (rune, error) {
	r, _, err := term.ReadRune()
	if err != nil {
		return 0, err
	}
	if r != '[' {
		return 0, nil
	}
	r, _, err = term.ReadRune()
	if err != nil {
		return 0, err
	}
	return r, nil
}

// Run starts the interactive session and blocks until the user accepts a
// choice with Enter. Ctrl+C returns ErrInterrupted; end of input returns a
// wrapped io.EOF. The terminal is restored to its previous state in every
// case.
func (p *Picker[T]) Run() (T, error) {
	var zero T
	if err := p.sel.validate(); err != nil {
		return zero, err
	}

	term := p.term
	out := p.out
	if term == nil {
		rt, err := newRealTerminal()
		if err != nil {
			return zero, fmt.Errorf("failed to open terminal: %w", err)
		}
		defer rt.Close()
		term = rt
		out = rt.output
	}

	if err := term.SetRaw(); err != nil {
		return zero, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore()

	_, height, _ := term.Size()
	maxRows := height - 2
	if maxRows < 1 {
		maxRows = 1
	}

	filter := ""
	cursor := 0
	if p.sel.defaultIdx >= 0 {
		cursor = p.sel.defaultIdx
	}
	cands := p.matches(filter)
	prevLines := 0

	for {
		if cursor >= len(cands) {
			cursor = len(cands) - 1
		}
		if cursor < 0 {
			cursor = 0
		}
		if prevLines > 0 {
			// move back to the first rendered line and clear downwards
			fmt.Fprintf(out, "\x1b[%dA\r\x1b[J", prevLines)
		}
		prevLines = p.render(out, filter, cands, cursor, maxRows)

		r, _, err := term.ReadRune()
		if err != nil {
			return zero, fmt.Errorf("failed to read input: %w", err)
		}

		switch r {
		case '\r', '\n':
			if len(cands) == 0 {
				continue
			}
			chosen := p.sel.choices[cands[cursor].index]
			fmt.Fprintf(out, "\x1b[%dA\r\x1b[J", prevLines)
			fmt.Fprintf(out, "%s%s%s %s\r\n", p.fmt.prefix, p.sel.msg, p.fmt.chip, chosen.Label)
			return chosen.Value, nil
		case 0x03: // Ctrl+C
			return zero, ErrInterrupted
		case 0x04: // Ctrl+D
			return zero, fmt.Errorf("input closed: %w", io.EOF)
		case 0x1b:
			dir, err := readEscape(term)
			if err != nil {
				return zero, fmt.Errorf("failed to read input: %w", err)
			}
			switch dir {
			case 'A':
				if cursor > 0 {
					cursor--
				}
			case 'B':
				if cursor < len(cands)-1 {
					cursor++
				}
			}
		case 0x7f, 0x08: // backspace
			if filter != "" {
				runes := []rune(filter)
				filter = string(runes[:len(runes)-1])
				cands = p.matches(filter)
				cursor = 0
			}
		default:
			if unicode.IsPrint(r) {
				filter += string(r)
				cands = p.matches(filter)
				cursor = 0
			}
		}
	}
}
