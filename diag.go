package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// fatal prints err to stderr, in red when stderr is a terminal, and exits
// non-zero.
func fatal(err error) {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ansiRed, ansiReset, err)
	} else {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(1)
}
