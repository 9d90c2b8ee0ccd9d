// Package image provides utilities for loading and processing images.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// ErrIsDirectory is returned when the image path names a directory.
var ErrIsDirectory = errors.New("path is a directory, not a file")

// DecodeError reports a path that could not be turned into an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot load image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path. A leading ~ is expanded to the
// user's home directory. Every failure is a *DecodeError.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, &DecodeError{Path: path, Err: errors.New("image path cannot be empty")}
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	info, err := os.Stat(expanded)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: pathCause(err)}
	}
	if info.IsDir() {
		return nil, &DecodeError{Path: path, Err: ErrIsDirectory}
	}

	file, err := os.Open(expanded) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, &DecodeError{Path: path, Err: pathCause(err)}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("unsupported or invalid image format: %w", err)}
	}

	return img, nil
}

// pathCause strips the *fs.PathError wrapper so the path is not repeated
// in the message.
func pathCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
}

// IsImageFile checks if a file has a supported image extension.
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}
