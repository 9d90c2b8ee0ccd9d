package colour

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	imageutil "github.com/jmylchreest/swatch/internal/image"
)

const (
	// DefaultLimit is the number of colours reported when none is configured.
	DefaultLimit = 10

	// MaxLimit is the largest accepted colour limit.
	MaxLimit = 256
)

// Stage names a step of the extraction pipeline.
type Stage string

const (
	StageLoad      Stage = "load"
	StageNormalise Stage = "normalise"
	StageCount     Stage = "count"
)

// ExtractionError is returned for every failed extraction.
type ExtractionError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Stage == StageLoad {
		return e.Err.Error()
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Swatch is one reported colour.
type Swatch struct {
	Hex   string
	RGB   RGB
	Count int
}

// Result is the outcome of a successful extraction.
type Result struct {
	Path string

	// Width and Height are the dimensions of the decoded source image.
	Width  int
	Height int

	// Distinct is the number of exact colours in the downsampled grid.
	Distinct int

	// Samples is the number of pixels counted.
	Samples int

	// Swatches holds the most frequent colours, most frequent first.
	Swatches []Swatch
}

// Hex returns the hex codes of the swatches in order.
func (r *Result) Hex() []string {
	hex := make([]string, len(r.Swatches))
	for i, s := range r.Swatches {
		hex[i] = s.Hex
	}
	return hex
}

// Extractor reports the most frequent colours of an image file.
type Extractor struct {
	loader imageutil.Loader
	limit  int
	logger hclog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLimit sets how many colours are reported.
func WithLimit(n int) Option {
	return func(e *Extractor) {
		e.limit = n
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger hclog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithLoader replaces the file loader.
func WithLoader(loader imageutil.Loader) Option {
	return func(e *Extractor) {
		e.loader = loader
	}
}

// NewExtractor creates an Extractor. It fails if the limit is out of range.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		loader: imageutil.NewFileLoader(),
		limit:  DefaultLimit,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := ValidateLimit(e.limit); err != nil {
		return nil, err
	}
	return e, nil
}

// ValidateLimit checks that n is an accepted colour count.
func ValidateLimit(n int) error {
	if n < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", n)
	}
	if n > MaxLimit {
		return fmt.Errorf("colour count too large: %d (maximum: %d)", n, MaxLimit)
	}
	return nil
}

// Extract loads the image at path, downsamples it and returns its most
// frequent colours.
func (e *Extractor) Extract(ctx context.Context, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ExtractionError{Stage: StageLoad, Path: path, Err: err}
	}

	e.logger.Debug("loading image", "path", path)
	img, err := e.loader.Load(path)
	if err != nil {
		return nil, &ExtractionError{Stage: StageLoad, Path: path, Err: err}
	}
	bounds := img.Bounds()
	e.logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	if err := ctx.Err(); err != nil {
		return nil, &ExtractionError{Stage: StageNormalise, Path: path, Err: err}
	}

	result, err := e.ExtractImage(ctx, img)
	if err != nil {
		var extractErr *ExtractionError
		if errors.As(err, &extractErr) {
			extractErr.Path = path
		}
		return nil, err
	}
	result.Path = path

	return result, nil
}

// ExtractImage runs the pipeline on an already decoded image.
func (e *Extractor) ExtractImage(ctx context.Context, img image.Image) (*Result, error) {
	grid, err := imageutil.Normalise(img)
	if err != nil {
		return nil, &ExtractionError{Stage: StageNormalise, Err: err}
	}
	e.logger.Debug("image normalised", "size", fmt.Sprintf("%dx%d", imageutil.SampleSize, imageutil.SampleSize))

	if err := ctx.Err(); err != nil {
		return nil, &ExtractionError{Stage: StageCount, Err: err}
	}

	entries := Histogram(grid)
	Rank(entries)
	swatches := Top(entries, e.limit)

	bounds := img.Bounds()
	result := &Result{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Distinct: len(entries),
		Samples:  imageutil.SampleSize * imageutil.SampleSize,
		Swatches: swatches,
	}
	e.logger.Debug("colours counted", "distinct", result.Distinct, "reported", len(swatches))

	return result, nil
}
