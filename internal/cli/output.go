package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Header is printed before the colour list in text formats.
const Header = "Extracted Colors:"

const previewWidth = 8

// outputOptions controls how a result is rendered.
type outputOptions struct {
	format  string
	preview bool
	counts  bool
}

// colourJSON represents a colour in JSON output format.
type colourJSON struct {
	Hex    string     `json:"hex"`
	RGB    colour.RGB `json:"rgb"`
	Pixels int        `json:"pixels"`
}

// resultJSON represents an extraction result in JSON format.
type resultJSON struct {
	Path     string       `json:"path"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Distinct int          `json:"distinct"`
	Count    int          `json:"count"`
	Colours  []colourJSON `json:"colours"`
}

// writeResult renders result to w.
func writeResult(w io.Writer, result *colour.Result, opts outputOptions) error {
	var output string
	switch opts.format {
	case FormatHex, FormatRGB:
		output = formatText(result, opts)
	case FormatJSON:
		jsonBytes, err := formatJSON(result)
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		output = string(jsonBytes) + "\n"
	default:
		return fmt.Errorf("unsupported format: %s", opts.format)
	}

	_, err := io.WriteString(w, output)
	return err
}

// formatText formats the swatches one per line under the header.
func formatText(result *colour.Result, opts outputOptions) string {
	var b strings.Builder
	b.WriteString(Header + "\n")

	for _, s := range result.Swatches {
		text := s.Hex
		if opts.format == FormatRGB {
			text = s.RGB.String()
		}
		if opts.counts {
			text = fmt.Sprintf("%s  %d", text, s.Count)
		}
		if opts.preview {
			text = colour.FormatWithPreview(s.RGB, text, previewWidth)
		}
		b.WriteString(text + "\n")
	}

	return b.String()
}

func formatJSON(result *colour.Result) ([]byte, error) {
	colours := make([]colourJSON, len(result.Swatches))
	for i, s := range result.Swatches {
		colours[i] = colourJSON{Hex: s.Hex, RGB: s.RGB, Pixels: s.Count}
	}

	return json.MarshalIndent(resultJSON{
		Path:     result.Path,
		Width:    result.Width,
		Height:   result.Height,
		Distinct: result.Distinct,
		Count:    len(colours),
		Colours:  colours,
	}, "", "  ")
}
