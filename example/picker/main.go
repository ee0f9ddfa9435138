// Package main demonstrates the interactive fuzzy picker. Arrow keys move
// the highlight, typing narrows the list, Enter accepts.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/ahmadbky/ezmenulib"
)

func main() {
	p := ezmenulib.NewPicker(ezmenulib.NewSelected("select a language",
		ezmenulib.NewChoice("Go", "go"),
		ezmenulib.NewChoice("Rust", "rs"),
		ezmenulib.NewChoice("Python", "py"),
		ezmenulib.NewChoice("TypeScript", "ts"),
		ezmenulib.NewChoice("Zig", "zig"),
	)).Scheme(ezmenulib.ThemeDark)

	ext, err := p.Run()
	if err != nil {
		if errors.Is(err, ezmenulib.ErrInterrupted) {
			fmt.Println("cancelled")
			return
		}
		log.Fatal(err)
	}

	fmt.Printf("file extension: .%s\n", ext)
}
