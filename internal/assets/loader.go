package assets

import (
	"fmt"
	"strings"
)

// Image types understood by the PDF writer.
const (
	TypePNG = "PNG"
	TypeJPG = "JPG"
	TypeGIF = "GIF"
)

// Image is an encoded image ready for embedding.
type Image struct {
	Data []byte
	Type string // TypePNG, TypeJPG or TypeGIF
}

// Loader defines the contract for loading fonts and images by name.
// Implementations may load from disk, memory, object storage, etc.
type Loader interface {
	// LoadFont loads TrueType font bytes by name (without extension).
	// Returns ErrFontNotFound if the font doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadFont(name string) ([]byte, error)

	// LoadImage loads an image by name (without extension).
	// Returns ErrImageNotFound if the image doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadImage(name string) (*Image, error)
}

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or control characters.
func ValidateAssetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// Chain tries each loader in order. A loader's "not found" moves on to the
// next one; any other error stops the search.
type Chain []Loader

// LoadFont implements Loader.
func (c Chain) LoadFont(name string) ([]byte, error) {
	return first(c, name, ErrFontNotFound, Loader.LoadFont)
}

// LoadImage implements Loader.
func (c Chain) LoadImage(name string) (*Image, error) {
	return first(c, name, ErrImageNotFound, Loader.LoadImage)
}

func first[T any](c Chain, name string, notFound error, load func(Loader, string) (T, error)) (T, error) {
	var zero T
	for _, l := range c {
		if l == nil {
			continue
		}
		v, err := load(l, name)
		if err == nil {
			return v, nil
		}
		if !IsNotFound(err) {
			return zero, err
		}
	}
	return zero, fmt.Errorf("%w: %q", notFound, name)
}

// MemoryLoader serves assets from maps keyed by name. Image data is
// sniffed for its type; WebP is converted like on disk.
type MemoryLoader struct {
	Fonts  map[string][]byte
	Images map[string][]byte
}

// LoadFont implements Loader.
func (m *MemoryLoader) LoadFont(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	data, ok := m.Fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return data, nil
}

// LoadImage implements Loader.
func (m *MemoryLoader) LoadImage(name string) (*Image, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	data, ok := m.Images[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrImageNotFound, name)
	}
	return decodeImage(name, data, sniffImageType(data))
}

// Compile-time interface checks.
var (
	_ Loader = Chain(nil)
	_ Loader = (*MemoryLoader)(nil)
)
