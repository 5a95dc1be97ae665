package main

import (
	"fmt"
	"os"

	"github.com/shouni/gemini-image-gen/cmd/imagegen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
