// Command phpknip is the CLI entrypoint: load a project, run the dead-code
// analysis pipeline, and either print the result, watch for changes and
// re-run, or serve the pipeline over MCP. Dispatches by hand on os.Args
// (no flag-parsing library pulled in for a handful of subcommands).
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "analyze":
		runAnalyze(args)
	case "watch":
		runWatch(args)
	case "serve":
		runServe(args)
	case "version":
		fmt.Printf("phpknip %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: phpknip <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  analyze    Run the dead-code analysis pipeline once and print issues")
	fmt.Println("  watch      Re-run analyze on every debounced source change")
	fmt.Println("  serve      Start the MCP server on stdin/stdout")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("analyze, watch and serve accept: --project, --config, --manifest, --lock, --framework, --log-level")
	fmt.Println("analyze and watch also accept: --format, --pretty, --group-by, --colors, --delimiter, --header")
	fmt.Println("serve also accepts: --log")
}
</content>
