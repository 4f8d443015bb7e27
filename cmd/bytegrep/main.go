// Command bytegrep is a line-oriented grep built on top of the byterex
// package: it is the out-of-scope CLI collaborator the library itself does
// not provide (file I/O, output formatting). It reads the files named on the
// command line, or stdin when none are named; it does not walk directories.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/vance-dev/byterex"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: bytegrep PATTERN [FILE...]")
		os.Exit(2)
	}

	re, err := byterex.Compile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "bytegrep: %v\n", err)
		os.Exit(2)
	}

	files := os.Args[2:]
	if len(files) == 0 {
		if scanLines(re, os.Stdin, "") {
			os.Exit(0)
		}
		os.Exit(1)
	}

	matched := false
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bytegrep: %v\n", err)
			continue
		}
		prefix := ""
		if len(files) > 1 {
			prefix = name + ":"
		}
		if scanLines(re, f, prefix) {
			matched = true
		}
		f.Close()
	}
	if matched {
		os.Exit(0)
	}
	os.Exit(1)
}

// scanLines prints every line of r matching re, prefixed by prefix, and
// reports whether any line matched.
func scanLines(re *byterex.Regex, r *os.File, prefix string) bool {
	matched := false
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if re.Match(line) {
			matched = true
			fmt.Printf("%s%s\n", prefix, line)
		}
	}
	return matched
}
