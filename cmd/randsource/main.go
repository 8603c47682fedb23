package main

import (
	"log"

	"github.com/dyikot/randsource/cmd/randsource/cmd"
)

func main() {
	log.SetFlags(0)
	cmd.Execute()
}
