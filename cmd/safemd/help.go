package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: safemd <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render markdown files to sanitized HTML")
	fmt.Fprintln(w, "  images     List image URLs referenced by a markdown file")
	fmt.Fprintln(w, "  css        Print the stylesheet for standalone pages")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'safemd help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: safemd render [flags] <input>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown to sanitized HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or - for stdin")
	fmt.Fprintln(w, "           (optional when stdin is piped)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --max-bytes <n>       Maximum input size in bytes (0 = no limit)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extensions:")
	fmt.Fprintln(w, "      --hard-wrap           Render single newlines as line breaks")
	fmt.Fprintln(w, "      --autolink            Link bare URLs and email addresses")
	fmt.Fprintln(w, "      --tables              Enable pipe tables")
	fmt.Fprintln(w, "      --fenced-code         Enable fenced code blocks")
	fmt.Fprintln(w, "      --strikethrough       Enable ~~strikethrough~~")
	fmt.Fprintln(w, "      --superscript         Enable ^superscript")
	fmt.Fprintln(w, "      --all-extensions      Enable every extension")
	fmt.Fprintln(w, "                            Use --flag=false to disable a configured extension")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --standalone          Wrap output in a complete HTML page")
	fmt.Fprintln(w, "      --style <name>        Highlight style (see 'safemd css --list')")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SAFEMD_CONFIG, SAFEMD_STYLE, SAFEMD_OUTPUT_DIR,")
	fmt.Fprintln(w, "  SAFEMD_WORKERS, SAFEMD_MAX_BYTES")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// printImagesUsage prints usage for the images command.
func printImagesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: safemd images <input>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the URL of every image in a markdown file, one per line,")
	fmt.Fprintln(w, "in document order. Use - to read from stdin.")
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: safemd css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the stylesheet embedded in standalone pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --style <name>        Highlight style (default \"github\")")
	fmt.Fprintln(w, "  -l, --list                List available styles")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case cmdRender:
		printRenderUsage(env.Stdout)
	case cmdImages:
		printImagesUsage(env.Stdout)
	case cmdCSS:
		printCSSUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: safemd version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: safemd help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
