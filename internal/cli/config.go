package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Environment variables that provide flag defaults.
const (
	EnvColours = "SWATCH_COLOURS"
	EnvFormat  = "SWATCH_FORMAT"
	EnvPreview = "SWATCH_PREVIEW"
	EnvVerbose = "SWATCH_VERBOSE"
)

// Output formats.
const (
	FormatHex  = "hex"
	FormatRGB  = "rgb"
	FormatJSON = "json"
)

// ValidFormats returns the accepted --format values.
func ValidFormats() []string {
	return []string{FormatHex, FormatRGB, FormatJSON}
}

// config holds the resolved settings for one invocation.
type config struct {
	colours int
	format  string
	preview bool
	counts  bool
	verbose bool
}

func defaultConfig() config {
	return config{
		colours: colour.DefaultLimit,
		format:  FormatHex,
	}
}

// configFromEnv applies SWATCH_* environment variables on top of the
// defaults. Flags parsed later override these values.
func configFromEnv(lookup func(string) (string, bool)) (config, error) {
	cfg := defaultConfig()

	if v, ok := lookup(EnvColours); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvColours, v, err)
		}
		cfg.colours = n
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		cfg.format = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvPreview); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvPreview, v, err)
		}
		cfg.preview = b
	}
	if v, ok := lookup(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvVerbose, v, err)
		}
		cfg.verbose = b
	}

	return cfg, nil
}

// bindFlags registers the command flags, using cfg for their defaults.
func bindFlags(fs *pflag.FlagSet, cfg *config) {
	fs.IntVarP(&cfg.colours, "colours", "c", cfg.colours, fmt.Sprintf("number of colours to print (1-%d)", colour.MaxLimit))
	fs.StringVarP(&cfg.format, "format", "f", cfg.format, "output format ("+strings.Join(ValidFormats(), ", ")+")")
	fs.BoolVarP(&cfg.preview, "preview", "p", cfg.preview, "show colour previews when writing to a terminal")
	fs.BoolVar(&cfg.counts, "counts", cfg.counts, "append pixel counts to each colour")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", cfg.verbose, "enable verbose output")
}

// validate checks settings that flags cannot constrain on their own.
func (c config) validate() error {
	if err := colour.ValidateLimit(c.colours); err != nil {
		return err
	}
	switch c.format {
	case FormatHex, FormatRGB, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: %s)", c.format, strings.Join(ValidFormats(), ", "))
	}
}

func lookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
