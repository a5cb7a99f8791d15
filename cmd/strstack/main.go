package main

import (
	"fmt"
	"os"
)

func main() {
	cmd, flush := newRootCmd()
	err := cmd.Execute()
	flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
