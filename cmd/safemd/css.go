package main

import (
	"fmt"

	"github.com/alnah/go-safemd/internal/config"
	"github.com/alnah/go-safemd/internal/highlight"
)

// runCSS prints the stylesheet used by standalone pages, or the list of
// available highlight styles.
func runCSS(args []string, env *Environment) error {
	flags, positional, err := parseCSSFlags(args)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: css takes no arguments, got %d", ErrTooManyArgs, len(positional))
	}

	if flags.list {
		for _, name := range highlight.StyleNames() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	style := flags.style
	if style == "" {
		style = loadEnvConfig(env.Getenv).Style
	}
	if style == "" {
		style = config.DefaultStyle
	}

	css, err := styleSheet(style)
	if err != nil {
		return err
	}
	fmt.Fprint(env.Stdout, css)
	return nil
}
