package ezmenulib

import (
	"fmt"
	"strings"
)

// Choice binds a displayed label to the typed value returned when the user
// picks it.
type Choice[T any] struct {
	Label string
	Value T
}

// NewChoice builds a Choice. It mostly exists to let type inference work at
// the call site of NewSelected.
func NewChoice[T any](label string, value T) Choice[T] {
	return Choice[T]{Label: label, Value: value}
}

// Selected describes one indexed-choice prompt: a message and an ordered
// list of labeled choices, displayed as a numbered list and picked by
// 1-based index. Labels need not be unique; the position is the selection
// key. At most one choice can be marked as the default.
//
// Example:
//
//	lic := ezmenulib.NewSelected("select a license",
//		ezmenulib.NewChoice("MIT", License.MIT),
//		ezmenulib.NewChoice("GPL", License.GPL),
//	).Default(0)
type Selected[T any] struct {
	msg        string
	choices    []Choice[T]
	defaultIdx int
	fmt        *Format
}

// NewSelected builds a selectable prompt specification. The choice order is
// the display order.
func NewSelected[T any](msg string, choices ...Choice[T]) *Selected[T] {
	return &Selected[T]{msg: msg, choices: choices, defaultIdx: -1}
}

// Default marks the choice at index i (0-based, into the choice list) as the
// default, returned whenever the user input is not a valid index.
func (s *Selected[T]) Default(i int) *Selected[T] {
	s.defaultIdx = i
	return s
}

// Fmt gives the prompt its own Format, merged over the baseline of the
// Values container it is used with.
func (s *Selected[T]) Fmt(f Format) *Selected[T] {
	s.fmt = &f
	return s
}

// validate checks the choice configuration before anything is rendered.
// Configuration mistakes are fatal and never retried.
func (s *Selected[T]) validate() error {
	if len(s.choices) == 0 {
		return ErrNoChoices
	}
	if s.defaultIdx < -1 || s.defaultIdx >= len(s.choices) {
		return fmt.Errorf("%w: %d with %d choices", ErrDefaultOutOfRange, s.defaultIdx, len(s.choices))
	}
	return nil
}

// header renders the annotated message, the numbered choice list and the
// suffix. It is written once per read; retries re-prompt the suffix only.
func (s *Selected[T]) header(f Format, optional bool) string {
	var b strings.Builder
	var notes []string
	if optional && s.defaultIdx < 0 {
		notes = append(notes, "optional")
	}
	b.WriteString(f.messageLine(s.msg, notes))
	b.WriteString("\n")
	for i, c := range s.choices {
		b.WriteString(f.choiceLine(i+1, c.Label, i == s.defaultIdx))
		b.WriteString("\n")
	}
	b.WriteString(f.suffix)
	return b.String()
}

// readIndex performs one suffix-prompted attempt at reading a choice index
// in [1, n]. It reports the 0-based index, whether the attempt was valid,
// and the raw line for callers that care about emptiness. This is the
// low-level primitive the menu navigator is built on.
func readIndex(h *Handle, prompt string, n int) (idx int, ok bool, line string, err error) {
	line, err = h.prompt(prompt)
	if err != nil {
		return 0, false, "", err
	}
	idx, ok = parseIndex(line, n)
	return idx, ok, line, nil
}

// Select runs a required indexed read: the list is rendered once, then the
// suffix is re-prompted until the user enters a valid index. The result is
// the value bound to the chosen index, not the index itself. With a default
// choice configured, any invalid attempt returns its value immediately.
func Select[T any](v *Values, s *Selected[T]) (T, error) {
	var zero T
	if err := s.validate(); err != nil {
		return zero, err
	}
	f := v.format(s.fmt)
	text := s.header(f, false)
	for {
		idx, ok, _, err := readIndex(v.handle, text, len(s.choices))
		if err != nil {
			return zero, err
		}
		text = f.suffix
		if !ok {
			if s.defaultIdx >= 0 {
				return s.choices[s.defaultIdx].Value, nil
			}
			continue
		}
		return s.choices[idx].Value, nil
	}
}

// SelectOptional runs an optional indexed read: an empty line returns
// absence (ok == false), a non-empty invalid line is retried, and a valid
// index returns its bound value.
func SelectOptional[T any](v *Values, s *Selected[T]) (T, bool, error) {
	var zero T
	if err := s.validate(); err != nil {
		return zero, false, err
	}
	f := v.format(s.fmt)
	text := s.header(f, true)
	for {
		idx, ok, line, err := readIndex(v.handle, text, len(s.choices))
		if err != nil {
			return zero, false, err
		}
		text = f.suffix
		if line == "" {
			return zero, false, nil
		}
		if !ok {
			continue
		}
		return s.choices[idx].Value, true, nil
	}
}

// SelectOrDefault runs a single-attempt indexed read that cannot loop: a
// valid index returns its value, anything else returns the default choice,
// or the zero value of T when no default is configured.
func SelectOrDefault[T any](v *Values, s *Selected[T]) (T, error) {
	var zero T
	if err := s.validate(); err != nil {
		return zero, err
	}
	f := v.format(s.fmt)
	idx, ok, _, err := readIndex(v.handle, s.header(f, true), len(s.choices))
	if err != nil {
		return zero, err
	}
	if ok {
		return s.choices[idx].Value, nil
	}
	if s.defaultIdx >= 0 {
		return s.choices[s.defaultIdx].Value, nil
	}
	return zero, nil
}
