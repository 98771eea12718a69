package kbpdf

import (
	"fmt"

	"github.com/alnah/go-kbpdf/internal/assets"
)

// Image is an encoded image. Type is "PNG", "JPG" or "GIF".
type Image = assets.Image

// AssetLoader defines the contract for loading fonts and logos by name.
// Implementations may load from filesystem, memory, object storage, etc.
//
// Return ErrFontNotFound or ErrImageNotFound when an asset does not exist;
// the engine then falls back to the next loader or to built-in defaults.
type AssetLoader interface {
	// LoadFont loads TrueType font bytes by name (without .ttf extension).
	LoadFont(name string) ([]byte, error)

	// LoadImage loads an image by name (without extension).
	LoadImage(name string) (*Image, error)
}

// NewAssetLoader creates an AssetLoader reading basePath/fonts/{name}.ttf
// and basePath/img/{name}.{png,jpg,jpeg,gif,webp}.
// Returns ErrInvalidAssetPath if basePath is not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	loader, err := assets.NewFilesystemLoader(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return loader, nil
}

// NewMemoryAssetLoader creates an AssetLoader serving the given bytes.
// Image types are detected from their content.
func NewMemoryAssetLoader(fonts, images map[string][]byte) AssetLoader {
	return &assets.MemoryLoader{Fonts: fonts, Images: images}
}

var _ assets.Loader = AssetLoader(nil)
