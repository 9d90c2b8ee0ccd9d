// Package cli provides the command-line interface for Swatch.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/image"
	"github.com/jmylchreest/swatch/internal/version"
)

// Run executes the command line and returns the process exit code.
// Failures are reported as a single "Error: ..." line on stdout.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the swatch command. Flag defaults are taken from the
// SWATCH_* environment variables.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg, envErr := configFromEnv(lookupEnv)

	cmd := &cobra.Command{
		Use:   "swatch [flags] <image_path>",
		Short: "Print the most frequent colours of an image",
		Long: `Swatch downsamples an image to a 50x50 grid, counts every exact colour and
prints the most frequent ones as hex codes, most frequent first.

Supported image formats: ` + strings.Join(image.SupportedImageExtensions(), ", ") + `

Examples:
  # Print the 10 most frequent colours
  swatch wallpaper.jpg

  # Print 5 colours with pixel counts
  swatch -c 5 --counts wallpaper.png

  # Emit JSON
  swatch --format json wallpaper.jpg`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			return runExtract(cmd, args, cfg, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(version.String() + "\n")
	bindFlags(cmd.Flags(), &cfg)

	return cmd
}

// runExtract executes the extraction for the single image argument.
func runExtract(cmd *cobra.Command, args []string, cfg config, stderr io.Writer) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintf(out, "Usage: %s <image_path>\n", cmd.Name())
		return nil
	}
	imagePath := args[0]

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg.verbose, stderr)
	if !image.IsImageFile(imagePath) {
		logger.Debug("unrecognised file extension, relying on content detection", "path", imagePath)
	}

	preview := cfg.preview
	if preview && !isTerminal(out) {
		logger.Debug("output is not a terminal, disabling preview")
		preview = false
	}

	extractor, err := colour.NewExtractor(
		colour.WithLimit(cfg.colours),
		colour.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	result, err := extractor.Extract(cmd.Context(), imagePath)
	if err != nil {
		return err
	}
	logger.Debug("extraction complete", "colours", len(result.Swatches))

	return writeResult(out, result, outputOptions{
		format:  cfg.format,
		preview: preview,
		counts:  cfg.counts,
	})
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
