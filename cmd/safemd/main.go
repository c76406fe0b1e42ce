// Command safemd renders Markdown files to sanitized HTML.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdRender  = "render"
	cmdImages  = "images"
	cmdCSS     = "css"
	cmdVersion = "version"
	cmdHelp    = "help"
)

func main() {
	env := DefaultEnv()
	setMaxProcs(hasVerboseFlag(os.Args[1:]), env.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runMain(ctx, os.Args, env)
	stop()
	os.Exit(code)
}

// setMaxProcs configures GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// hasVerboseFlag reports whether args request verbose output.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// runMain runs the command named by args[1] and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err := run(ctx, args[1], args[2:], env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run dispatches a command.
func run(ctx context.Context, cmd string, args []string, env *Environment) error {
	switch cmd {
	case cmdRender:
		return runRender(ctx, args, env)
	case cmdImages:
		return runImages(args, env)
	case cmdCSS:
		return runCSS(args, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "safemd %s\n", Version)
		return nil
	case cmdHelp, "-h", "--help":
		runHelp(args, env)
		return nil
	default:
		return fmt.Errorf("%w: %s (run 'safemd help')", ErrUnknownCommand, cmd)
	}
}
