package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// extensionFlags holds the Markdown extension toggles.
type extensionFlags struct {
	hardWrap      bool
	autolink      bool
	tables        bool
	fencedCode    bool
	strikethrough bool
	superscript   bool
	all           bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common     commonFlags
	output     string
	workers    int
	maxBytes   int
	standalone bool
	style      string
	ext        extensionFlags

	// changed records flags set on the command line, so that an explicit
	// --tables=false overrides a config that enables tables.
	changed map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addExtensionFlags adds Markdown extension flags to a FlagSet.
func addExtensionFlags(fs *flag.FlagSet, f *extensionFlags) {
	fs.BoolVar(&f.hardWrap, "hard-wrap", false, "render single newlines as <br>")
	fs.BoolVar(&f.autolink, "autolink", false, "link bare URLs and email addresses")
	fs.BoolVar(&f.tables, "tables", false, "enable pipe tables")
	fs.BoolVar(&f.fencedCode, "fenced-code", false, "enable ``` and ~~~ code fences")
	fs.BoolVar(&f.strikethrough, "strikethrough", false, "enable ~~strikethrough~~")
	fs.BoolVar(&f.superscript, "superscript", false, "enable ^superscript")
	fs.BoolVar(&f.all, "all-extensions", false, "enable every extension")
}

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	return fs
}

// parseRenderFlags parses render command flags and returns positional arguments.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	f := &renderFlags{changed: map[string]bool{}}
	fs := newFlagSet("render")

	addCommonFlags(fs, &f.common)
	addExtensionFlags(fs, &f.ext)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.IntVar(&f.maxBytes, "max-bytes", 0, "maximum input size in bytes (0 = no limit)")
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a full HTML page")
	fs.StringVar(&f.style, "style", "", "highlight style for standalone pages")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})

	return f, fs.Args(), nil
}

// imagesFlags holds flags for the images command.
type imagesFlags struct {
	common commonFlags
}

// parseImagesFlags parses images command flags.
func parseImagesFlags(args []string) (*imagesFlags, []string, error) {
	f := &imagesFlags{}
	fs := newFlagSet("images")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	return f, fs.Args(), nil
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	common commonFlags
	style  string
	list   bool
}

// parseCSSFlags parses css command flags.
func parseCSSFlags(args []string) (*cssFlags, []string, error) {
	f := &cssFlags{}
	fs := newFlagSet("css")
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.style, "style", "s", "", "highlight style name")
	fs.BoolVarP(&f.list, "list", "l", false, "list available styles")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	return f, fs.Args(), nil
}
