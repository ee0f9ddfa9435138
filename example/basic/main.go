// Package main demonstrates basic written prompts.
package main

import (
	"fmt"
	"log"

	"github.com/ahmadbky/ezmenulib"
)

func main() {
	v := ezmenulib.NewValues(nil)

	name, err := ezmenulib.Prompt[string](v, ezmenulib.NewWritten("your name please"))
	if err != nil {
		log.Fatal(err)
	}

	age, err := ezmenulib.Prompt[uint8](v, ezmenulib.NewWritten("how old are you").
		Example("19").
		Default("18"))
	if err != nil {
		log.Fatal(err)
	}

	likesGo, err := ezmenulib.Prompt[bool](v, ezmenulib.NewWritten("do you like Go").
		Default("yes"))
	if err != nil {
		log.Fatal(err)
	}

	nickname, ok, err := ezmenulib.PromptOptional[string](v, ezmenulib.NewWritten("nickname"))
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		nickname = name
	}

	fmt.Printf("Hello %s (%s), age %d, likes Go: %t\n", name, nickname, age, likesGo)
}
