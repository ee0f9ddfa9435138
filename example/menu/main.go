// Package main demonstrates a nested navigable menu.
package main

import (
	"fmt"
	"io"
	"log"

	"github.com/ahmadbky/ezmenulib"
)

func main() {
	firstname := "Ahmad"
	lastname := "Baalbaky"

	play := func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Now playing as %s %s\n", firstname, lastname)
		return err
	}

	askName := func(field string, target *string) func(*ezmenulib.Handle) error {
		return func(h *ezmenulib.Handle) error {
			v := ezmenulib.NewValues(h)
			name, err := ezmenulib.Prompt[string](v, ezmenulib.NewWritten(field).Default(*target))
			if err != nil {
				return err
			}
			*target = name
			return nil
		}
	}

	err := ezmenulib.NewMenu(
		ezmenulib.Field{Label: "Play", Kind: ezmenulib.Unit(play)},
		ezmenulib.Field{Label: "Settings", Kind: ezmenulib.Parent(
			ezmenulib.Field{Label: "First name", Kind: ezmenulib.Map(askName("first name", &firstname))},
			ezmenulib.Field{Label: "Last name", Kind: ezmenulib.Map(askName("last name", &lastname))},
			ezmenulib.Field{Label: "Main menu", Kind: ezmenulib.Back(1)},
		)},
		ezmenulib.Field{Label: "Quit", Kind: ezmenulib.Quit()},
	).Title("Hello there!").Run()
	if err != nil {
		log.Fatal(err)
	}
}
