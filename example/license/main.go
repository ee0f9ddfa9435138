// Package main walks through the fields of a license header, showing
// selectable prompts, multi-value reads and defaults working together.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ahmadbky/ezmenulib"
)

type license int

const (
	mit license = iota
	gpl
	bsd
)

func (l license) String() string {
	return [...]string{"MIT", "GPL", "BSD"}[l]
}

func main() {
	v := ezmenulib.NewValues(nil).
		Fmt(ezmenulib.NewFormat(ezmenulib.WithPrefix("==> ")))

	authors, err := ezmenulib.PromptMany[string](v,
		ezmenulib.NewWritten("authors, separated by commas"), ",")
	if err != nil {
		log.Fatal(err)
	}

	project, err := ezmenulib.Prompt[string](v, ezmenulib.NewWritten("project name").
		Example("my-project"))
	if err != nil {
		log.Fatal(err)
	}

	year, err := ezmenulib.Prompt[uint16](v, ezmenulib.NewWritten("license year").
		Example("2019").
		Default("2026"))
	if err != nil {
		log.Fatal(err)
	}

	lic, err := ezmenulib.Select(v, ezmenulib.NewSelected("select a license",
		ezmenulib.NewChoice("MIT", mit),
		ezmenulib.NewChoice("GPL", gpl),
		ezmenulib.NewChoice("BSD", bsd),
	).Default(0))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s License, Copyright (C) %d %s\nProject: %s\n",
		lic, year, strings.Join(authors, ", "), project)
}
