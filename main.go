package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mcncl/jsonlens/internal/analyzer"
	"github.com/mcncl/jsonlens/internal/config"
	"github.com/mcncl/jsonlens/internal/errors"
	"github.com/mcncl/jsonlens/internal/fetcher"
	"github.com/mcncl/jsonlens/internal/formatter"
	"github.com/mcncl/jsonlens/internal/models"
	"github.com/mcncl/jsonlens/internal/parser"
	"github.com/mcncl/jsonlens/internal/report"
)

// CLI defines the command-line interface
var CLI struct {
	URL         string `help:"URL to fetch JSON from. The body is parsed regardless of its declared content type." short:"u"`
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to write the pretty-printed JSON to (export)." short:"o" type:"path"`
	Config      string `help:"Path to a config file. Defaults to the nearest .jsonlens.yml." short:"c" type:"path"`
	JSON        bool   `help:"Emit the summary as JSON instead of a table." short:"j"`
	Timeout     int    `help:"Fetch timeout in seconds. Overrides the config file." short:"t"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	cliParser := kong.Must(&CLI,
		kong.Name("jsonlens"),
		kong.Description("Validate JSON from a URL, file, or stdin and summarize its structure"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := cliParser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jsonlens version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := run(&Context{Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonlens --help\n")
		os.Exit(1)
	}
}

// loadConfig resolves configuration: explicit path, discovered file, or
// defaults, with CLI flags applied on top.
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg := config.NewConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, errors.NewInputError(fmt.Sprintf("failed to load config from '%s'", path), err)
		}
		cfg = loaded
	}

	if CLI.Timeout > 0 {
		cfg.Fetch.TimeoutSeconds = CLI.Timeout
	}
	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Obtain a parsed value from URL, file, or stdin
	value, err := resolveInput(ctx.Config)
	if err != nil {
		// Error is already wrapped by resolveInput
		return err
	}

	// 2. Summarize the structure
	summary := analyzer.Summarize(value)

	// 3. Render the summary
	rendered, err := renderSummary(summary)
	if err != nil {
		return err
	}
	fmt.Println(strings.TrimRight(rendered, "\n"))

	// 4. Export the canonical serialization if requested
	if CLI.Output != "" {
		return writeExport(value, ctx.Config)
	}
	return nil
}

// resolveInput obtains a parsed value from the configured source.
// URL and file input are mutually exclusive.
func resolveInput(cfg *config.Config) (models.Value, error) {
	if CLI.URL != "" && CLI.Input != "" {
		return nil, errors.NewInputError("cannot specify both --input and --url", nil)
	}

	if CLI.URL != "" {
		if err := validateURL(CLI.URL); err != nil {
			return nil, err
		}
		f := fetcher.New(cfg.Timeout(), cfg.Fetch.UserAgent, cfg.Fetch.Accept)
		return f.FetchAndParse(context.Background(), CLI.URL)
	}

	if CLI.Input != "" {
		return parser.ParseFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}
	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return parser.ParseBytes(jsonData)
}

// validateURL rejects URLs jsonlens cannot fetch before any network
// activity happens.
func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.NewInputError(fmt.Sprintf("invalid URL %q", rawURL), err)
	}
	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return errors.NewInputError(
			fmt.Sprintf("invalid URL scheme %q: only http and https are supported", parsed.Scheme),
			nil,
		)
	}
	return nil
}

// renderSummary produces the text or JSON form of the summary.
func renderSummary(summary models.StructureSummary) (string, error) {
	if !CLI.JSON {
		return report.Render(summary), nil
	}
	encoded, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", errors.NewOutputError("failed to encode summary as JSON", err)
	}
	return string(encoded), nil
}

// writeExport writes the canonical pretty-printed document to the
// output path.
func writeExport(value models.Value, cfg *config.Config) error {
	text, err := formatter.FormatIndent(value, cfg.Indent())
	if err != nil {
		return errors.NewOutputError("failed to serialize JSON for export", err)
	}
	if err := os.WriteFile(CLI.Output, []byte(text+"\n"), 0644); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
	}
	fmt.Fprintf(os.Stderr, "Pretty-printed JSON written to %s\n", CLI.Output)
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (models.Value, error) {
	fmt.Fprintln(os.Stderr, "jsonlens Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
