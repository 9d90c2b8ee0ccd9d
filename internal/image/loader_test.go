package image

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 32), B: 100, A: 255})
		}
	}
	return img
}

func writeFile(t *testing.T, path string, encode func(io.Writer) error) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	if err := encode(f); err != nil {
		t.Fatalf("Failed to encode file: %v", err)
	}
}

func TestFileLoaderFormats(t *testing.T) {
	dir := t.TempDir()
	img := testImage()

	tests := []struct {
		name   string
		file   string
		encode func(io.Writer) error
	}{
		{name: "png", file: "a.png", encode: func(w io.Writer) error { return png.Encode(w, img) }},
		{name: "jpeg", file: "a.jpg", encode: func(w io.Writer) error { return jpeg.Encode(w, img, nil) }},
		{name: "gif", file: "a.gif", encode: func(w io.Writer) error { return gif.Encode(w, img, nil) }},
		{name: "bmp", file: "a.bmp", encode: func(w io.Writer) error { return bmp.Encode(w, img) }},
		{name: "tiff", file: "a.tiff", encode: func(w io.Writer) error { return tiff.Encode(w, img, nil) }},
		{name: "png without extension", file: "noext", encode: func(w io.Writer) error { return png.Encode(w, img) }},
	}

	loader := NewFileLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, tt.encode)

			got, err := loader.Load(path)
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if got.Bounds().Dx() != 16 || got.Bounds().Dy() != 8 {
				t.Errorf("Expected 16x8 image, got %v", got.Bounds())
			}
		})
	}
}

func TestFileLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		target  error
		message string
	}{
		{
			name:    "empty path",
			path:    "",
			message: "image path cannot be empty",
		},
		{
			name:    "missing file",
			path:    filepath.Join(dir, "missing.png"),
			target:  fs.ErrNotExist,
			message: "cannot load image " + filepath.Join(dir, "missing.png"),
		},
		{
			name:    "directory",
			path:    dir,
			target:  ErrIsDirectory,
			message: "path is a directory",
		},
		{
			name:    "undecodable",
			path:    garbage,
			target:  image.ErrFormat,
			message: "unsupported or invalid image format",
		},
	}

	loader := NewFileLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load(tt.path)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("Expected *DecodeError, got %T", err)
			}
			if decodeErr.Path != tt.path {
				t.Errorf("Expected path %q, got %q", tt.path, decodeErr.Path)
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("Expected errors.Is(%v, %v)", err, tt.target)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected message to contain %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestFileLoaderExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	writeFile(t, filepath.Join(home, "wall.png"), func(w io.Writer) error {
		return png.Encode(w, testImage())
	})

	if _, err := NewFileLoader().Load("~/wall.png"); err != nil {
		t.Fatalf("Load(~/wall.png) unexpected error: %v", err)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"icon.png", true},
		{"anim.gif", true},
		{"modern.webp", true},
		{"old.bmp", true},
		{"scan.tif", true},
		{"scan.tiff", true},
		{"notes.txt", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsImageFile(tt.path); got != tt.want {
				t.Errorf("IsImageFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
