// Command typograf fixes frequent typography errors in text files.
// It provides commands for fixing text, listing locales, and printing
// version information.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/core/typograf"
	"github.com/FocuswithJustin/typograf/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for typograf.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (text, json)"`

	Fix     FixCmd     `cmd:"" default:"withargs" help:"Fix typography in text"`
	Locales LocalesCmd `cmd:"" help:"List supported locales"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// FixCmd reads text, fixes its typography and writes the result.
type FixCmd struct {
	Path string `arg:"" optional:"" default:"-" help:"Input file (default: stdin); .xz input is decompressed transparently"`
	Out  string `short:"o" default:"-" help:"Output file (default: stdout); .xz output is compressed transparently" type:"path"`

	Locale         string `short:"l" default:"en-us" help:"Locale to apply (en-us, de-de, cs, sk, rue)"`
	KeepLines      bool   `help:"Preserve runs of empty lines"`
	NoCodeBlocks   bool   `help:"Do not shield markdown code blocks and backtick spans"`
	KeepListIndent bool   `help:"Preserve indentation of markdown list items"`
}

func (c *FixCmd) Run() error {
	ctx := logging.WithRequestID(context.Background(), uuid.New().String())
	start := time.Now()

	text, err := readInput(c.Path)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	opts := typograf.DefaultOptions()
	opts.RemoveLines = !c.KeepLines
	opts.ShieldCodeBlocks = !c.NoCodeBlocks
	opts.KeepListIndent = c.KeepListIndent

	fixed, err := typograf.FixTypos(text, c.Locale, opts)
	if err != nil {
		logging.ErrorContext(ctx, "fix failed", "locale", c.Locale, "error", err)
		return err
	}

	if err := writeOutput(c.Out, fixed); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logging.DebugContext(ctx, "fix completed",
		"locale", c.Locale,
		"in_bytes", len(text),
		"out_bytes", len(fixed),
		"duration", time.Since(start),
	)
	return nil
}

// readInput reads the whole input, decompressing .xz files.
func readInput(path string) (string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("failed to open xz stream: %w", err)
		}
		r = xr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeOutput writes the result, compressing when the target is an .xz file.
func writeOutput(path, text string) error {
	var w io.Writer
	if path == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if strings.HasSuffix(path, ".xz") {
		xw, err := xz.NewWriter(w)
		if err != nil {
			return fmt.Errorf("failed to create xz stream: %w", err)
		}
		if _, err := io.WriteString(xw, text); err != nil {
			return err
		}
		return xw.Close()
	}

	_, err := io.WriteString(w, text)
	return err
}

// LocalesCmd lists supported locales with their profile fingerprints.
type LocalesCmd struct {
	JSON bool `help:"Output as JSON"`
}

func (c *LocalesCmd) Run() error {
	if c.JSON {
		fmt.Println("[")
		ids := locale.IDs()
		for i, id := range ids {
			p, err := locale.Get(id)
			if err != nil {
				return err
			}
			comma := ","
			if i == len(ids)-1 {
				comma = ""
			}
			fmt.Printf("  {\"id\": %q, \"fingerprint\": %q}%s\n", p.ID, p.Fingerprint(), comma)
		}
		fmt.Println("]")
		return nil
	}

	for _, id := range locale.IDs() {
		p, err := locale.Get(id)
		if err != nil {
			return err
		}
		fmt.Printf("%-8s %s\n", p.ID, p.Fingerprint())
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("typograf %s\n", version)
	return nil
}

func parseLogLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("typograf"),
		kong.Description("typograf - Fix frequent typography errors in multiple languages"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(parseLogLevel(CLI.LogLevel), format)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
