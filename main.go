package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	var opts Options
	var showVersion bool

	flag.StringVar(&opts.InputFile, "input-file", "", "script to compile")
	flag.StringVar(&opts.InputFile, "i", "", "script to compile (shorthand)")
	flag.StringVar(&opts.OutputFile, "output-file", "", "object file path (default: input with .o extension)")
	flag.StringVar(&opts.OutputFile, "o", "", "object file path (shorthand)")
	flag.StringVar(&opts.Target, "target", "", "target triple (default: host)")
	flag.StringVar(&opts.Target, "t", "", "target triple (shorthand)")
	flag.StringVar(&opts.Linker, "linker", "", "linker to run on the emitted object")
	flag.StringVar(&opts.Linker, "l", "", "linker to run on the emitted object (shorthand)")
	flag.BoolVar(&opts.Verbose, "verbose", false, "print the lowered IR")
	flag.BoolVar(&opts.Verbose, "v", false, "print the lowered IR (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		printVersion()
		return
	}

	if opts.InputFile == "" {
		// A bare positional argument also names the input.
		if flag.NArg() == 1 {
			opts.InputFile = flag.Arg(0)
		} else {
			fmt.Fprintln(os.Stderr, "usage: jscc --input-file <script.js> [--output-file <out.o>] [--target <triple>] [--linker <ld>] [--verbose]")
			os.Exit(2)
		}
	}

	if err := Compile(opts); err != nil {
		fatal(err)
	}
}
