package ezmenulib

import (
	"fmt"
	"io"
	"strings"
)

// Field is one entry of a menu level: a displayed label and the action
// dispatched when the entry is picked. The entry's position in its level is
// its 1-based display index and its selection key; labels need not be
// unique.
type Field struct {
	Label string
	Kind  Kind
}

// Fields is the ordered entry list of one menu level.
type Fields []Field

// Kind is the action bound to a menu field. It is a sealed sum type; use the
// Unit, Map, Parent, Back and Quit constructors.
type Kind interface {
	kind()
}

type unitKind struct {
	fn func(io.Writer) error
}

type mapKind struct {
	fn func(*Handle) error
}

type parentKind struct {
	fields Fields
}

type backKind struct {
	n int
}

type quitKind struct{}

func (unitKind) kind()   {}
func (mapKind) kind()    {}
func (parentKind) kind() {}
func (backKind) kind()   {}
func (quitKind) kind()   {}

// Unit binds a callback invoked with the menu's output stream. The session
// stays at the current level afterwards. A callback error is fatal and
// aborts the session.
func Unit(fn func(w io.Writer) error) Kind {
	return unitKind{fn: fn}
}

// Map binds a callback invoked with the menu's whole stream pair, so the
// action can run nested prompts on the same session. Like Unit, the session
// stays at the current level and a callback error is fatal.
func Map(fn func(h *Handle) error) Kind {
	return mapKind{fn: fn}
}

// Parent makes the entry descend into a child menu level made of the given
// fields, pushing the current level onto the navigation stack.
func Parent(fields ...Field) Kind {
	return parentKind{fields: fields}
}

// Back makes the entry pop n levels off the navigation stack. When n exceeds
// the current depth the whole session terminates successfully instead of
// clamping to the root, so a deeply nested "main menu" entry can use a large
// n without knowing its depth.
func Back(n int) Kind {
	return backKind{n: n}
}

// Quit makes the entry terminate the session immediately and successfully.
func Quit() Kind {
	return quitKind{}
}

// Menu is an immutable tree of labeled entries together with the stream pair
// and Format used to display it. Build it with NewMenu and the chainable
// methods, then call Run.
//
//	m := ezmenulib.NewMenu(
//		ezmenulib.Field{Label: "Play", Kind: ezmenulib.Unit(play)},
//		ezmenulib.Field{Label: "Settings", Kind: ezmenulib.Parent(
//			ezmenulib.Field{Label: "Name", Kind: ezmenulib.Map(askName)},
//			ezmenulib.Field{Label: "Go back", Kind: ezmenulib.Back(1)},
//		)},
//		ezmenulib.Field{Label: "Quit", Kind: ezmenulib.Quit()},
//	).Title("Hello there!")
//	err := m.Run()
type Menu struct {
	title  string
	fields Fields
	handle *Handle
	fmt    Format
}

// NewMenu builds a menu from its root entries.
func NewMenu(fields ...Field) *Menu {
	return &Menu{fields: fields, fmt: NewFormat()}
}

// Title sets the heading displayed above the root level.
func (m *Menu) Title(title string) *Menu {
	m.title = title
	return m
}

// Fmt sets the Format used to render every level of the menu.
func (m *Menu) Fmt(f Format) *Menu {
	m.fmt = NewFormat().Merge(f)
	return m
}

// Handle sets the stream pair the session runs against. Unset, the menu uses
// the standard streams.
func (m *Menu) Handle(h *Handle) *Menu {
	m.handle = h
	return m
}

// level pairs the entries of one menu depth with the heading it is displayed
// under: the menu title for the root, the parent entry's label below.
type level struct {
	heading string
	fields  Fields
}

// render writes the heading and the numbered entry list, ending with the
// suffix. It is written once on arrival at the level; staying at the level
// re-prompts the suffix only.
func (l level) render(f Format) string {
	var b strings.Builder
	if l.heading != "" {
		b.WriteString(f.messageLine(l.heading, nil))
		b.WriteString("\n")
	}
	for i, field := range l.fields {
		b.WriteString(f.choiceLine(i+1, field.Label, false))
		b.WriteString("\n")
	}
	b.WriteString(f.suffix)
	return b.String()
}

// validateFields walks the tree once before the session starts, so
// configuration mistakes surface before anything is rendered.
func validateFields(heading string, fields Fields) error {
	if len(fields) == 0 {
		return fmt.Errorf("menu level %q: %w", heading, ErrNoChoices)
	}
	for _, field := range fields {
		switch k := field.Kind.(type) {
		case parentKind:
			if err := validateFields(field.Label, k.fields); err != nil {
				return err
			}
		case backKind:
			if k.n < 1 {
				return fmt.Errorf("menu entry %q: back count must be at least 1, got %d", field.Label, k.n)
			}
		}
	}
	return nil
}

// Run starts the navigation session and blocks until a terminal state is
// reached: a Quit entry, a Back entry jumping past the root, or a fatal
// error (I/O failure or a callback error). Invalid index input is retried
// and never surfaces.
//
// The navigator keeps the path from the root to the current level on an
// explicit stack: Parent pushes, Back pops. The menu tree itself is never
// mutated, so the same Menu can be run again after the session ends.
func (m *Menu) Run() error {
	if err := validateFields(m.title, m.fields); err != nil {
		return err
	}
	h := m.handle
	if h == nil {
		h = DefaultHandle()
	}

	current := level{heading: m.title, fields: m.fields}
	var stack []level
	for {
		// arrival at a level: render its heading and entries once
		text := current.render(m.fmt)
		moved := false
		for !moved {
			idx, ok, _, err := readIndex(h, text, len(current.fields))
			if err != nil {
				return err
			}
			text = m.fmt.suffix
			if !ok {
				continue
			}
			entry := current.fields[idx]
			switch k := entry.Kind.(type) {
			case unitKind:
				if err := k.fn(h.Writer()); err != nil {
					return fmt.Errorf("menu action %q: %w", entry.Label, err)
				}
			case mapKind:
				if err := k.fn(h); err != nil {
					return fmt.Errorf("menu action %q: %w", entry.Label, err)
				}
			case parentKind:
				stack = append(stack, current)
				current = level{heading: entry.Label, fields: k.fields}
				moved = true
			case backKind:
				if k.n > len(stack) {
					return nil
				}
				current = stack[len(stack)-k.n]
				stack = stack[:len(stack)-k.n]
				moved = true
			case quitKind:
				return nil
			}
		}
	}
}
