/*
Command calconv is a thin command-line wrapper around package convert: it
exposes the module's one programmatic entry point, Convert, through the
root command's flags and renders the resulting GenericDate as a one-row table.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
