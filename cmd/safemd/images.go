package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alnah/go-safemd"
	"github.com/alnah/go-safemd/internal/fileutil"
)

// runImages prints the image URLs referenced by a Markdown file, one per line.
func runImages(args []string, env *Environment) error {
	_, positional, err := parseImagesFlags(args)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrTooManyArgs, len(positional))
	}

	input, err := resolveInput(positional, env)
	if err != nil {
		return err
	}

	content, err := readInput(input, env)
	if err != nil {
		return err
	}

	for _, u := range safemd.ExtractImageURLs(content) {
		fmt.Fprintln(env.Stdout, u)
	}
	return nil
}

// readInput reads Markdown from a file or, for "-", from stdin.
// Input is capped at the default render limit.
func readInput(input string, env *Environment) (string, error) {
	if input == stdinArg {
		return readCapped(env.Stdin)
	}

	if !fileutil.IsMarkdown(input) {
		return "", fmt.Errorf("%w: got %q", ErrInvalidExtension, input)
	}
	f, err := os.Open(input) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	defer func() { _ = f.Close() }()
	return readCapped(f)
}

// readCapped reads r and rejects input over DefaultMaxInputSize.
func readCapped(r io.Reader) (string, error) {
	content, err := readLimited(r, safemd.DefaultMaxInputSize)
	if err != nil {
		return "", err
	}
	if len(content) > safemd.DefaultMaxInputSize {
		return "", fmt.Errorf("%w: more than %d bytes", safemd.ErrInputTooLarge, safemd.DefaultMaxInputSize)
	}
	return content, nil
}
