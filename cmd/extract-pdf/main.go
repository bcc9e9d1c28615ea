// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the extract-pdf CLI. It converts one
// PDF to Markdown and prints the outcome as a single JSON record on stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/extract-pdf/internal/convert"
	"github.com/pdiddy/extract-pdf/internal/extract"
	"github.com/pdiddy/extract-pdf/internal/logging"
	"github.com/pdiddy/extract-pdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	programName  = "extract-pdf"
	usageMessage = "Usage: " + programName + " <pdf_path>"
)

// usageError marks a malformed invocation. It is reported as the usage
// record with exit status 1.
type usageError struct {
	reason string
	// flag is set when pflag rejected the arguments, as opposed to a wrong
	// argument count.
	flag bool
}

func (e *usageError) Error() string { return e.reason }

func exactlyOnePath(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &usageError{reason: fmt.Sprintf("expected 1 argument, received %d", len(args))}
	}
	return nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   programName + " <pdf_path>",
		Short: "Convert a PDF to Markdown and report the result as JSON",
		Long: `extract-pdf converts one PDF file into Markdown for language-model
consumption and prints a single JSON record on stdout:

  {"success":true,"text":"...","length":N}
  {"success":false,"error":"..."}

Extraction failures are reported in the record; the exit status is 1 only
for a malformed invocation. Diagnostics go to stderr.

Backends: text (pure Go, default), pdfium, mupdf, pdftotext, markitdown.`,
		Version:       version,
		Args:          exactlyOnePath,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res := extractOne(cmd, v, args[0], stderr)
			_, err := res.WriteTo(stdout)
			return err
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{reason: err.Error(), flag: true}
	})

	defaults := types.DefaultExtractionConfig()
	flags := cmd.Flags()
	flags.String("config", "", "config file (default: ./extract-pdf.yaml or ~/.config/extract-pdf/extract-pdf.yaml)")
	flags.String("backend", string(defaults.Backend), "conversion backend: "+types.BackendNames())
	flags.String("page-separator", defaults.PageSeparator, "text placed between pages by page-oriented backends")
	flags.String("log-level", defaults.Log.Level, "log level on stderr: debug, info, warn, error")
	flags.String("log-format", defaults.Log.Format, "log encoding on stderr: console or json")

	return cmd
}

// extractOne loads configuration, builds the backend, and extracts path.
// Setup failures come back as failed results, since the invocation itself
// was valid.
func extractOne(cmd *cobra.Command, v *viper.Viper, path string, stderr io.Writer) extract.Result {
	cfg, err := loadConfig(v, cmd)
	if err != nil {
		return extract.Failure(err)
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return extract.Failure(err)
	}
	defer logger.Sync()

	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", zap.String("path", used))
	}

	conv, err := convert.New(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Warn("backend unavailable", zap.String("backend", string(cfg.Backend)), zap.Error(err))
		return extract.Failure(err)
	}
	return extract.NewExtractor(conv, logger).Extract(cmd.Context(), path)
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	err := execute(args, stdout, stderr)
	var ue *usageError
	if errors.As(err, &ue) && ue.flag && len(args) == 1 {
		// A lone argument pflag cannot parse, such as "-draft.pdf", is the
		// path itself.
		err = execute([]string{"--", args[0]}, stdout, stderr)
	}

	if err != nil {
		if errors.As(err, &ue) {
			fmt.Fprintf(stderr, "%s: %s\n", programName, ue.reason)
			_, _ = extract.FailureMessage(usageMessage).WriteTo(stdout)
			return 1
		}
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return 1
	}
	return 0
}

func execute(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
