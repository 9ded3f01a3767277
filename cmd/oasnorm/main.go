package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oasnorm"
	"github.com/erraggy/oasnorm/cmd/oasnorm/commands"
)

// commandNames lists every top-level command, for typo suggestions.
var commandNames = []string{"dedupe", "propname", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	os.Exit(run(os.Args[1], os.Args[2:]))
}

// run dispatches a command and returns the process exit code.
func run(command string, args []string) int {
	var err error
	switch command {
	case "version", "--version":
		fmt.Printf("oasnorm v%s\n", oasnorm.Version())
		fmt.Println(oasnorm.BuildInfo())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "dedupe":
		err = commands.HandleDedupe(args)
	case "propname":
		err = commands.HandlePropname(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		return 1
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// suggestCommand returns the closest command within edit distance 2 of
// input, or "" when none is that close.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b, over bytes.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`oasnorm - OpenAPI document normalization for code generators

Usage:
  oasnorm <command> [options]

Commands:
  dedupe      Remove enum values that only differ by letter case
  propname    Convert raw property names into language-safe identifiers
  mcp         Serve oasnorm tools over the Model Context Protocol (stdio)
  version     Show version information
  help        Show this help message

Examples:
  oasnorm dedupe openapi.yaml > normalized.yaml
  oasnorm dedupe -w --case-mode unicode openapi.json
  oasnorm propname foo.bar 'a+b'
  oasnorm mcp

Run 'oasnorm <command> --help' for more information on a command.`)
}
