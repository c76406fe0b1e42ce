package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-safemd"
	"github.com/alnah/go-safemd/internal/config"
	"github.com/alnah/go-safemd/internal/document"
	"github.com/alnah/go-safemd/internal/fileutil"
	"github.com/alnah/go-safemd/internal/highlight"
	"github.com/alnah/go-safemd/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidFlag        = errors.New("invalid flag")
	ErrTooManyArgs        = errors.New("too many arguments")
	ErrUnknownCommand     = errors.New("unknown command")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// stdinArg selects standard input as the Markdown source.
const stdinArg = "-"

// htmlExtension is the extension of rendered files.
const htmlExtension = ".html"

// FileToRender represents a single file to process.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// renderParams groups settings shared across a batch.
type renderParams struct {
	renderer   *safemd.Renderer
	standalone bool
	css        string
	workers    int
	now        func() time.Time
}

// clock returns the current time from the injected clock, if any.
func (p *renderParams) clock() time.Time {
	if p.now == nil {
		return time.Now()
	}
	return p.now()
}

// runRender orchestrates the render command.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrTooManyArgs, len(positional))
	}

	warnUnknownEnvVars(env.Stderr, env.Environ)
	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := loadRenderConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := validateWorkers(cfg.Limits.Workers); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	params, err := buildRenderParams(cfg)
	if err != nil {
		return err
	}
	params.now = env.Now

	input, err := resolveInput(positional, env)
	if err != nil {
		return err
	}

	if input == stdinArg {
		return renderStream(ctx, env.Stdin, env.Stdout, params)
	}

	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverFiles(input, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, input)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Rendering %d file(s) with %d worker(s)\n",
			len(files), min(safemd.ResolveWorkers(params.workers), len(files)))
	}

	results := renderBatch(ctx, files, params)
	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d render(s) failed", failedCount)
	}
	return nil
}

// loadRenderConfig loads the config named by the flag, or by SAFEMD_CONFIG
// when the flag is absent. Without either, defaults apply.
func loadRenderConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. Only flags set on the command
// line override config values.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	changed := flags.changed

	if flags.ext.all {
		cfg.Render = config.RenderConfig{
			HardWrap:         true,
			Autolink:         true,
			Tables:           true,
			FencedCodeBlocks: true,
			Strikethrough:    true,
			Superscript:      true,
		}
	}
	if changed["hard-wrap"] {
		cfg.Render.HardWrap = flags.ext.hardWrap
	}
	if changed["autolink"] {
		cfg.Render.Autolink = flags.ext.autolink
	}
	if changed["tables"] {
		cfg.Render.Tables = flags.ext.tables
	}
	if changed["fenced-code"] {
		cfg.Render.FencedCodeBlocks = flags.ext.fencedCode
	}
	if changed["strikethrough"] {
		cfg.Render.Strikethrough = flags.ext.strikethrough
	}
	if changed["superscript"] {
		cfg.Render.Superscript = flags.ext.superscript
	}

	if changed["workers"] {
		cfg.Limits.Workers = flags.workers
	}
	if changed["max-bytes"] {
		cfg.Limits.MaxInputBytes = flags.maxBytes
	}
	if changed["standalone"] {
		cfg.Output.Standalone = flags.standalone
	}
	if flags.style != "" {
		cfg.Output.Style = flags.style
	}
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
}

// renderOptions converts the render section of a config to library options.
func renderOptions(rc config.RenderConfig) safemd.Options {
	return safemd.Options{
		HardWrap:         rc.HardWrap,
		Autolink:         rc.Autolink,
		Tables:           rc.Tables,
		FencedCodeBlocks: rc.FencedCodeBlocks,
		Strikethrough:    rc.Strikethrough,
		Superscript:      rc.Superscript,
	}
}

// buildRenderParams builds the renderer and page stylesheet from config.
func buildRenderParams(cfg *config.Config) (*renderParams, error) {
	params := &renderParams{
		renderer: safemd.New(
			safemd.WithOptions(renderOptions(cfg.Render)),
			safemd.WithMaxInputSize(cfg.Limits.MaxInputBytes),
		),
		standalone: cfg.Output.Standalone,
		workers:    cfg.Limits.Workers,
	}

	if cfg.Output.Standalone {
		css, err := styleSheet(cfg.Output.Style)
		if err != nil {
			return nil, err
		}
		params.css = css
	}
	return params, nil
}

// resolveInput determines the input from args or piped stdin.
func resolveInput(args []string, env *Environment) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if env.StdinPiped != nil && env.StdinPiped() {
		return stdinArg, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// discoverFiles finds all markdown files to render.
func discoverFiles(inputPath, outputDir string) ([]FileToRender, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdown(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath, err := resolveOutputPath(inputPath, outputDir, "")
		if err != nil {
			return nil, err
		}
		return []FileToRender{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToRender
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		outPath, err := resolveOutputPath(path, outputDir, inputPath)
		if err != nil {
			return err
		}
		files = append(files, FileToRender{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a markdown file.
// An output ending in .html names the file itself; otherwise it is a
// directory that mirrors the layout under baseInputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) (string, error) {
	if outputDir == "" {
		return fileutil.ReplaceExtension(inputPath, htmlExtension)
	}

	if strings.EqualFold(filepath.Ext(outputDir), htmlExtension) && baseInputDir == "" {
		return outputDir, nil
	}

	name, err := fileutil.ReplaceExtension(filepath.Base(inputPath), htmlExtension)
	if err != nil {
		return "", err
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name), nil
		}
	}

	return filepath.Join(outputDir, name), nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkersLimit {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkersLimit)
	}
	return nil
}

// renderStream renders Markdown read from r and writes the result to w.
func renderStream(ctx context.Context, r io.Reader, w io.Writer, params *renderParams) error {
	content, err := readLimited(r, params.renderer.MaxInputSize())
	if err != nil {
		return err
	}

	out, err := renderContent(ctx, params, content, "")
	if errors.Is(err, safemd.ErrInputTooLarge) {
		return fmt.Errorf("%w%s", err, hints.ForInputTooLarge(params.renderer.MaxInputSize()))
	}
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}

// readLimited reads r, stopping one byte past limit so oversized input is
// rejected by the renderer without buffering all of it. A limit of 0 reads
// everything.
func readLimited(r io.Reader, limit int) (string, error) {
	if limit > 0 {
		r = io.LimitReader(r, int64(limit)+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(content), nil
}

// styleSheet returns the standalone page stylesheet for style, hinting
// at the available names when style is unknown.
func styleSheet(style string) (string, error) {
	css, err := document.StyleSheet(style)
	if errors.Is(err, highlight.ErrStyleNotFound) {
		return "", fmt.Errorf("%w%s", err, hints.ForStyleNotFound(highlight.StyleNames()))
	}
	return css, err
}

// renderContent renders Markdown and wraps it in a page when standalone
// output is enabled. Fragments end with a newline.
func renderContent(ctx context.Context, params *renderParams, content, title string) (string, error) {
	frag, err := params.renderer.Render(ctx, content)
	if err != nil {
		return "", err
	}

	if !params.standalone {
		out := frag.String()
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		return out, nil
	}

	wrapper := &document.TemplateWrapper{}
	return wrapper.Wrap(ctx, document.Page{Title: title, CSS: params.css, Body: frag})
}
