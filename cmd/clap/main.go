// Package main provides the clap demo: a clap button in the terminal.
//
// Usage:
//
//	clap run [options]    Run the widget
//	clap version          Print version information
//	clap help             Show help
//
// Examples:
//
//	clap run                          Start from zero with the default max of 50
//	clap run -pattern context         Wire the subcomponents through a scope
//	clap run -total 1000 -clicked     Start as an already clapped post
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `clap - a clap button for the terminal

Usage:
  clap <command> [options]

Commands:
  run         Run the clap widget
  version     Print version information
  help        Show this help message

Run options:
  -pattern    How subcomponents are wired: props or context (default props)
  -max        Maximum claps (default 50)
  -count      Initial count (default 0)
  -total      Initial total (default 0)
  -clicked    Start in the clicked state
  -fps        Animation frame rate (default 60)

Keys:
  space/enter clap, r reset, q or Ctrl+C quit

Set CLAP_DEBUG=/path/to/file to write a debug log.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		if err := runRun(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("clap version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
