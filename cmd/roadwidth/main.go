// Command roadwidth generates random road graphs and answers widest-path
// queries over them.
//
//	roadwidth -g <numNodes> <numEdges> <filePath>
//	roadwidth -t <sourceId> <targetId> <filePath> [--path]
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "roadwidth: %v\n", err)
		return 1
	}

	return 0
}
