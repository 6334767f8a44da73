// Package main provides the entry point for bptreectl, a thin CLI demo
// that builds an index.Index over sample records and exercises
// equality, range, and predicate lookups against it.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args))
}

// run executes the CLI and returns an exit code. Separated from main()
// to facilitate testing, matching the teacher's own cmd/oba split.
func run(args []string) int {
	if len(args) < 2 {
		printUsage(os.Stdout)
		return 1
	}

	switch args[1] {
	case "demo":
		return demoCmd(args[2:])
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[1])
		fmt.Fprintln(os.Stderr, "Run 'bptreectl help' for usage.")
		return 1
	}
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "bptreectl — B+ tree index demo CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  bptreectl demo [-config path]   build a sample index and print stats")
	fmt.Fprintln(w, "  bptreectl help                  show this message")
}
