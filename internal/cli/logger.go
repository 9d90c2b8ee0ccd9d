package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns a debug logger writing to w when verbose is set, and a
// silent one otherwise.
func newLogger(verbose bool, w io.Writer) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "swatch",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
