package main

import (
	"fmt"
	"os"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
