package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/cssns/cmd/cssns/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "classes":
		err = commands.Classes(args)
	case "explain":
		err = commands.Explain(args)
	case "html":
		err = commands.HTML(args)
	case "widget":
		err = commands.Widget(args)
	case "markdown", "md":
		err = commands.Markdown(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("cssns version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`cssns - namespace CSS class names

Usage: cssns <command> [options]

Commands:
  classes         Rewrite class lists from arguments or stdin lines
  explain         Show how each token of a class list is rewritten
  html            Rewrite class attributes of an HTML document or fragment
  widget          Rewrite the classes of a widget JSON tree
  markdown        Render Markdown to HTML with namespaced classes
  init            Create a cssns.toml in the current directory
  version         Print version information
  help            Show this help message

Examples:
  cssns classes -n MyComponent "this row"      MyComponent MyComponent-row
  cssns explain -n Card --tailwind "card p-4"  Per-token decisions
  cssns html -n Page -i page.html -o out.html  Rewrite a document
  cssns markdown -n Doc -i README.md           Render and namespace docs

Configuration:
  Defaults are read from cssns.toml (or cssns.yaml, cssns.json) in the
  current directory; flags override file values.`)
}
