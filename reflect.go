package main

import (
	"log"

	"tableflip.dev/reflect/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("reflect: %v", err)
	}
}
