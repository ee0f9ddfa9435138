package ezmenulib

import (
	"strconv"
	"strings"
)

// Default presentation values. A prompt built with an unmodified Format
// renders like:
//
//	--> how old are you (example: 19, default: 18)
//	>>
//
// and a selectable prompt like:
//
//	--> select a license
//	1 - MIT
//	2 - GPL
//	3 - BSD
//	>>
const (
	defaultPrefix       = "--> "
	defaultLeftBracket  = "("
	defaultRightBracket = ")"
	defaultChip         = " - "
	defaultSuffix       = ">> "
)

// formatField identifies one presentation field of a Format. Merge uses it
// to know which fields were explicitly set, without inspecting values.
type formatField uint8

const (
	fieldPrefix formatField = 1 << iota
	fieldLeftBracket
	fieldRightBracket
	fieldChip
	fieldSuffix
	fieldLineBreak
	fieldShowDefault
)

// Format holds the textual decoration rules applied to a prompt:
//
//   - prefix: written before the message (default "--> ")
//   - brackets: surround the example/default/optional annotation (default "(" and ")")
//   - chip: separates a list index from its label (default " - ")
//   - suffix: the input marker written right before the user types (default ">> ")
//   - line break: put the suffix on its own line (default true)
//   - show default: display default-value annotations (default true)
//
// A Format is a value: copy it freely, it is never mutated once a prompt
// starts rendering. Fields left unset defer to the defaults above and lose
// against explicitly set fields when two Formats are merged.
type Format struct {
	prefix      string
	left        string
	right       string
	chip        string
	suffix      string
	lineBreak   bool
	showDefault bool
	set         formatField
}

// FormatOption overrides a single presentation field of a Format.
type FormatOption func(*Format)

// WithPrefix sets the string written before every prompt message.
func WithPrefix(prefix string) FormatOption {
	return func(f *Format) {
		f.prefix = prefix
		f.set |= fieldPrefix
	}
}

// WithBrackets sets the pair of strings surrounding prompt annotations
// such as "example: 19" or "optional".
func WithBrackets(left, right string) FormatOption {
	return func(f *Format) {
		f.left = left
		f.right = right
		f.set |= fieldLeftBracket | fieldRightBracket
	}
}

// WithChip sets the separator between a choice index and its label.
func WithChip(chip string) FormatOption {
	return func(f *Format) {
		f.chip = chip
		f.set |= fieldChip
	}
}

// WithSuffix sets the input marker written right before the user input.
func WithSuffix(suffix string) FormatOption {
	return func(f *Format) {
		f.suffix = suffix
		f.set |= fieldSuffix
	}
}

// WithLineBreak controls whether the suffix goes on its own line.
func WithLineBreak(lineBreak bool) FormatOption {
	return func(f *Format) {
		f.lineBreak = lineBreak
		f.set |= fieldLineBreak
	}
}

// WithShowDefault controls whether default values appear in annotations.
func WithShowDefault(show bool) FormatOption {
	return func(f *Format) {
		f.showDefault = show
		f.set |= fieldShowDefault
	}
}

// NewFormat builds a Format from the package defaults and the given
// overrides.
//
// Example:
//
//	f := ezmenulib.NewFormat(
//		ezmenulib.WithPrefix("* "),
//		ezmenulib.WithSuffix(": "),
//		ezmenulib.WithLineBreak(false),
//	)
func NewFormat(opts ...FormatOption) Format {
	f := Format{
		prefix:      defaultPrefix,
		left:        defaultLeftBracket,
		right:       defaultRightBracket,
		chip:        defaultChip,
		suffix:      defaultSuffix,
		lineBreak:   true,
		showDefault: true,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Merge combines two Formats field by field: for every field the override
// explicitly set, its value wins; everything else keeps the receiver's
// value. Merge is associative, and merging with NewFormat() on either side
// is the identity.
func (f Format) Merge(override Format) Format {
	out := f
	if override.set&fieldPrefix != 0 {
		out.prefix = override.prefix
	}
	if override.set&fieldLeftBracket != 0 {
		out.left = override.left
	}
	if override.set&fieldRightBracket != 0 {
		out.right = override.right
	}
	if override.set&fieldChip != 0 {
		out.chip = override.chip
	}
	if override.set&fieldSuffix != 0 {
		out.suffix = override.suffix
	}
	if override.set&fieldLineBreak != 0 {
		out.lineBreak = override.lineBreak
	}
	if override.set&fieldShowDefault != 0 {
		out.showDefault = override.showDefault
	}
	out.set = f.set | override.set
	return out
}

// messageLine renders the annotated message without any suffix:
// "{prefix}{msg} {left}{note, note}{right}".
func (f Format) messageLine(msg string, notes []string) string {
	var b strings.Builder
	b.WriteString(f.prefix)
	b.WriteString(msg)
	if len(notes) > 0 {
		b.WriteString(" ")
		b.WriteString(f.left)
		b.WriteString(strings.Join(notes, ", "))
		b.WriteString(f.right)
	}
	return b.String()
}

// promptText renders the full text of a written prompt: the annotated
// message, the configured line break, then the suffix.
func (f Format) promptText(msg string, notes []string) string {
	var b strings.Builder
	b.WriteString(f.messageLine(msg, notes))
	if f.lineBreak {
		b.WriteString("\n")
	}
	b.WriteString(f.suffix)
	return b.String()
}

// choiceLine renders one numbered list entry: "{index}{chip}{label}",
// with a bracketed "default" marker when the entry is the default choice.
func (f Format) choiceLine(index int, label string, isDefault bool) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(index))
	b.WriteString(f.chip)
	b.WriteString(label)
	if isDefault && f.showDefault {
		b.WriteString(" ")
		b.WriteString(f.left)
		b.WriteString("default")
		b.WriteString(f.right)
	}
	return b.String()
}
