// Package ezmenulib builds interactive console applications from declarative
// value prompts and hierarchical menus.
//
// The package covers three layers that share one presentation model:
//
//   - Written prompts read a typed value from a line of input, with optional
//     example and default annotations, retry loops, and custom parsers.
//   - Selected prompts display a numbered choice list and read a 1-based
//     index, mapping it to the value bound to the chosen entry.
//   - Menus arrange labeled actions into a navigable tree: entries run
//     callbacks, descend into child levels, go back up, or quit.
//
// Quick Start:
//
// The simplest way to read a value:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/ahmadbky/ezmenulib"
//	)
//
//	func main() {
//		v := ezmenulib.NewValues(nil) // stdin/stdout
//		age, err := ezmenulib.Prompt[int](v, ezmenulib.NewWritten("how old are you").
//			Example("19").
//			Default("18"))
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("age:", age)
//	}
//
// which renders as:
//
//	--> how old are you (example: 19, default: 18)
//	>>
//
// Choice lists work the same way with Selected:
//
//	lic, err := ezmenulib.Select(v, ezmenulib.NewSelected("select a license",
//		ezmenulib.NewChoice("MIT", MIT),
//		ezmenulib.NewChoice("GPL", GPL),
//		ezmenulib.NewChoice("BSD", BSD),
//	).Default(0))
//
// Menus:
//
// A menu is a tree of Fields. Unit and Map bind callbacks, Parent nests a
// child level, Back pops levels, Quit ends the session:
//
//	err := ezmenulib.NewMenu(
//		ezmenulib.Field{Label: "Play", Kind: ezmenulib.Unit(play)},
//		ezmenulib.Field{Label: "Settings", Kind: ezmenulib.Parent(
//			ezmenulib.Field{Label: "Name", Kind: ezmenulib.Map(askName)},
//			ezmenulib.Field{Label: "Main menu", Kind: ezmenulib.Back(1)},
//		)},
//		ezmenulib.Field{Label: "Quit", Kind: ezmenulib.Quit()},
//	).Title("Hello there!").Run()
//
// Presentation:
//
// Every layer renders through a Format. Formats merge: a Values container
// carries a baseline, and a prompt carrying its own Format overrides only
// the fields it explicitly set. See NewFormat and Format.Merge.
//
// Streams:
//
// All reads and writes go through a Handle, a buffered reader paired with a
// writer. The default Handle wraps stdin and stdout (color-capable on
// Windows); tests inject bytes.Buffer-backed handles. Prompting through a
// Values or Menu is sequential; none of the types are safe for concurrent
// use.
//
// Error Handling:
//
// Invalid user input is retried, never surfaced. Errors reaching the caller
// are fatal: I/O failures (including a wrapped io.EOF when input ends),
// configuration mistakes such as ErrNoChoices or ErrInvalidDefault, and
// callback errors from menu actions. The interactive Picker additionally
// returns ErrInterrupted on Ctrl+C.
package ezmenulib
