package ezmenulib

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Written describes one free-text prompt: the message shown to the user,
// with an optional example, an optional default value and an optional custom
// Format. Build it with NewWritten and the chainable methods, then hand it
// to one of the prompting operations. A Written is immutable once a read
// starts and can be reused across reads.
//
// Example:
//
//	year := ezmenulib.NewWritten("license year").Example("2019").Default("2022")
//	v := ezmenulib.NewValues(nil)
//	y, err := ezmenulib.Prompt[uint16](v, year)
type Written struct {
	msg     string
	example string
	def     string
	hasDef  bool
	fmt     *Format
}

// NewWritten builds a prompt specification with the given message.
func NewWritten(msg string) *Written {
	return &Written{msg: msg}
}

// Example attaches an example value, displayed inside the annotation
// brackets next to the message.
func (w *Written) Example(example string) *Written {
	w.example = example
	return w
}

// Default sets the value returned, as-is and without validation, whenever
// the user input is empty or invalid. The raw string is parsed into the
// target type at read time; a default that does not parse surfaces
// ErrInvalidDefault.
func (w *Written) Default(value string) *Written {
	w.def = value
	w.hasDef = true
	return w
}

// DefaultFrom resolves the default value from an injected lookup function,
// at construction time. A missing key leaves the prompt without a default.
func (w *Written) DefaultFrom(key string, lookup func(string) (string, bool)) *Written {
	if v, ok := lookup(key); ok {
		return w.Default(v)
	}
	return w
}

// DefaultEnv resolves the default value from the named environment variable.
// It is a convenience for DefaultFrom with os.LookupEnv.
func (w *Written) DefaultEnv(key string) *Written {
	return w.DefaultFrom(key, os.LookupEnv)
}

// Fmt gives the prompt its own Format, merged over the baseline of the
// Values container it is used with.
func (w *Written) Fmt(f Format) *Written {
	w.fmt = &f
	return w
}

// notes builds the annotation parts displayed next to the message. In an
// optional-flavored read, a prompt without a default is annotated
// "optional".
func (w *Written) notes(optional bool, showDefault bool) []string {
	var notes []string
	if w.example != "" {
		notes = append(notes, "example: "+w.example)
	}
	switch {
	case w.hasDef && showDefault:
		notes = append(notes, "default: "+w.def)
	case optional && !w.hasDef:
		notes = append(notes, "optional")
	}
	return notes
}

// keep accepts every value. It is the validator of the unconditioned
// prompting operations.
func keep[T any](T) bool { return true }

// Prompt runs a required read: the annotated message is rendered once, then
// the suffix is re-prompted until a line parses into T. There is no bound on
// the retry count. With a configured default, any empty or invalid line
// returns the default immediately instead of looping. I/O failures are fatal
// and propagate.
func Prompt[T any](v *Values, w *Written) (T, error) {
	return promptLoop(v, w, parseValue[T], keep[T])
}

// PromptWith is Prompt with a caller-supplied parser instead of the built-in
// one.
func PromptWith[T any](v *Values, w *Written, parse ParseFunc[T]) (T, error) {
	return promptLoop(v, w, parse, keep[T])
}

// PromptUntil is Prompt with an extra predicate: a line that parses but is
// rejected by valid counts as invalid input and is retried. A configured
// default is returned as-is on input failure, without going through the
// predicate.
func PromptUntil[T any](v *Values, w *Written, valid func(T) bool) (T, error) {
	return promptLoop(v, w, parseValue[T], valid)
}

func promptLoop[T any](v *Values, w *Written, parse ParseFunc[T], valid func(T) bool) (T, error) {
	var zero T
	f := v.format(w.fmt)
	text := f.promptText(w.msg, w.notes(false, f.showDefault))
	for {
		line, err := v.handle.prompt(text)
		if err != nil {
			return zero, err
		}
		// retries re-prompt the suffix only, the message stays on screen
		text = f.suffix
		if line == "" {
			if w.hasDef {
				return parseDefault(w.def, parse)
			}
			continue
		}
		val, perr := parse(line)
		if perr != nil {
			if errors.Is(perr, ErrUnsupportedType) {
				return zero, perr
			}
			if w.hasDef {
				return parseDefault(w.def, parse)
			}
			continue
		}
		if !valid(val) {
			if w.hasDef {
				return parseDefault(w.def, parse)
			}
			continue
		}
		return val, nil
	}
}

// PromptOptional runs an optional read. An empty line returns absence
// (ok == false) instead of looping; a non-empty line that does not parse is
// retried like a required read. A configured default does not apply to
// optional reads: the empty-line escape hatch always wins.
func PromptOptional[T any](v *Values, w *Written) (T, bool, error) {
	var zero T
	f := v.format(w.fmt)
	var notes []string
	if w.example != "" {
		notes = append(notes, "example: "+w.example)
	}
	notes = append(notes, "optional")
	text := f.promptText(w.msg, notes)
	for {
		line, err := v.handle.prompt(text)
		if err != nil {
			return zero, false, err
		}
		text = f.suffix
		if line == "" {
			return zero, false, nil
		}
		val, perr := parseValue[T](line)
		if perr != nil {
			if errors.Is(perr, ErrUnsupportedType) {
				return zero, false, perr
			}
			continue
		}
		return val, true, nil
	}
}

// PromptOrDefault runs a single-attempt read that cannot loop: a valid line
// returns its value, anything else returns the configured default, or the
// zero value of T when no default is set. Only I/O and configuration
// failures produce an error.
func PromptOrDefault[T any](v *Values, w *Written) (T, error) {
	var zero T
	f := v.format(w.fmt)
	line, err := v.handle.prompt(f.promptText(w.msg, w.notes(true, f.showDefault)))
	if err != nil {
		return zero, err
	}
	if line != "" {
		val, perr := parseValue[T](line)
		if perr == nil {
			return val, nil
		}
		if errors.Is(perr, ErrUnsupportedType) {
			return zero, perr
		}
	}
	if w.hasDef {
		return parseDefault(w.def, parseValue[T])
	}
	return zero, nil
}

// PromptMany reads several values from a single line split on sep. Every
// token must parse; the first invalid token fails the whole line and the
// read retries the entire line. A configured default is parsed with the same
// splitting rules.
func PromptMany[T any](v *Values, w *Written, sep string) ([]T, error) {
	f := v.format(w.fmt)
	text := f.promptText(w.msg, w.notes(false, f.showDefault))
	for {
		line, err := v.handle.prompt(text)
		if err != nil {
			return nil, err
		}
		text = f.suffix
		if line == "" {
			if w.hasDef {
				return parseTokens[T](w.def, sep, true)
			}
			continue
		}
		vals, perr := parseTokens[T](line, sep, false)
		if perr != nil {
			if errors.Is(perr, ErrUnsupportedType) || errors.Is(perr, ErrInvalidDefault) {
				return nil, perr
			}
			if w.hasDef {
				return parseTokens[T](w.def, sep, true)
			}
			continue
		}
		return vals, nil
	}
}

// parseTokens splits a line on sep and parses every trimmed token. When
// asDefault is set, a failure is reported as ErrInvalidDefault instead of a
// retryable input error.
func parseTokens[T any](line, sep string, asDefault bool) ([]T, error) {
	tokens := strings.Split(line, sep)
	vals := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			if asDefault {
				return nil, fmt.Errorf("%w: %q: empty token", ErrInvalidDefault, line)
			}
			return nil, fmt.Errorf("empty token in %q", line)
		}
		val, err := parseValue[T](tok)
		if err != nil {
			if errors.Is(err, ErrUnsupportedType) {
				return nil, err
			}
			if asDefault {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDefault, line, err)
			}
			return nil, err
		}
		vals = append(vals, val)
	}
	return vals, nil
}

// parseDefault parses a configured default value without running any
// validation on the result.
func parseDefault[T any](def string, parse ParseFunc[T]) (T, error) {
	val, err := parse(def)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %q: %v", ErrInvalidDefault, def, err)
	}
	return val, nil
}
