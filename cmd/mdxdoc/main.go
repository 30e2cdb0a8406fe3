// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

// mdxdoc renders API document models into MDX.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/docforge/mdxdoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/docforge/mdxdoc"
	_buildTime string
)

// cliOptions describes mdxdoc CLI flags and subcommands.
type cliOptions struct {
	Version versionCommand `command:"version" description:"Print version information"`
	Render  renderCommand  `command:"render" description:"Render a document model file to MDX"`
}

// renderCommand converts one document model into MDX text.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input document model path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output MDX file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Format      string `short:"f" long:"format" description:"Document model format" choice:"auto" choice:"json" choice:"yaml" default:"auto"`
	Preset      string `short:"p" long:"preset" description:"Cache coordinator preset" choice:"default" choice:"development" choice:"production" default:"default"`
	ItemName    string `short:"n" long:"item" description:"Contextual API item name (overrides model item)"`
	ItemPackage string `short:"P" long:"package" description:"Contextual API item package (overrides model item)"`
	Stats       bool   `short:"s" long:"stats" description:"Print cache statistics to stderr after rendering"`
	Verbose     []bool `short:"v" long:"verbose" description:"Increase diagnostic log verbosity (repeatable)"`
}

// Execute runs the render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(renderRunOptions{
		InputPath:   command.Args.Input,
		OutputPath:  command.Args.Output,
		Format:      command.Format,
		Preset:      command.Preset,
		ItemName:    command.ItemName,
		ItemPackage: command.ItemPackage,
		Stats:       command.Stats,
		Verbosity:   len(command.Verbose),
	})
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs the version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// renderRunOptions carries normalized render subcommand inputs.
type renderRunOptions struct {
	InputPath   string
	OutputPath  string
	Format      string
	Preset      string
	ItemName    string
	ItemPackage string
	Stats       bool
	Verbosity   int
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "mdxdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runRender executes the document-model-to-MDX flow.
func (runner *cliRunner) runRender(options renderRunOptions) error {
	data, err := runner.readModelInput(options.InputPath)
	if err != nil {
		return fmt.Errorf("read document model: %w", err)
	}

	doc, err := mdxdoc.DecodeDocument(data, mdxdoc.ModelFormat(options.Format))
	if err != nil {
		return fmt.Errorf("decode document model: %w", err)
	}

	item := doc.Item
	if strings.TrimSpace(options.ItemName) != "" {
		item = &mdxdoc.APIItem{
			Name:    strings.TrimSpace(options.ItemName),
			Package: strings.TrimSpace(options.ItemPackage),
		}
	}

	caches := mdxdoc.NewCoordinator(coordinatorPreset(options.Preset))
	logger := mdxdoc.NewConsoleLogger(runner.stderr, options.Verbosity)
	renderer := mdxdoc.NewRenderer(mdxdoc.RendererOptions{
		Caches: caches,
		Logger: &logger,
	})

	rendered, err := renderer.Render(doc.Root, mdxdoc.NewRenderContext(item))
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}

	if err := runner.writeOutput(options.OutputPath, rendered); err != nil {
		return err
	}

	if options.Stats {
		stats := caches.Stats()
		_, _ = fmt.Fprintf(runner.stderr, "cache stats: type-analysis %d/%d, references %d/%d, hit rate %.2f\n",
			stats.TypeAnalysis.Size, stats.TypeAnalysis.Capacity,
			stats.ReferenceResolution.Size, stats.ReferenceResolution.Capacity,
			stats.HitRate)
	}

	return nil
}

// coordinatorPreset maps a preset name to coordinator options.
func coordinatorPreset(name string) mdxdoc.CoordinatorOptions {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "development":
		return mdxdoc.DevelopmentCoordinatorOptions()
	case "production":
		return mdxdoc.ProductionCoordinatorOptions()
	default:
		return mdxdoc.DefaultCoordinatorOptions()
	}
}

// readModelInput reads the document model from file path or stdin.
func (runner *cliRunner) readModelInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read model file %q: %w", path, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read model from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read model from stdin: empty input")
	}

	return data, nil
}

// writeOutput writes rendered text to stdout or the selected file.
func (runner *cliRunner) writeOutput(path, rendered string) error {
	if strings.TrimSpace(path) == "" {
		if _, err := io.WriteString(runner.stdout, rendered); err != nil {
			return fmt.Errorf("write MDX to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(path, []byte(rendered), 0o600); err != nil {
		return fmt.Errorf("write MDX file %q: %w", path, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Render.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"render": strings.TrimSpace(fmt.Sprintf(`
Render a document model (JSON or YAML) into MDX text.
Reads the model from file argument or stdin; writes MDX to file argument or stdout.

Examples:
> $ %s render model.json > page.mdx
> $ cat model.yaml | %s render -f yaml -p production -s > page.mdx
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
