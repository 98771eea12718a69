package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrFontNotFound indicates the requested font does not exist.
	ErrFontNotFound = errors.New("font not found")

	// ErrImageNotFound indicates the requested image does not exist.
	ErrImageNotFound = errors.New("image not found")

	// ErrUnsupportedImage indicates the image could not be decoded or converted.
	ErrUnsupportedImage = errors.New("unsupported image")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)

// IsNotFound reports whether err means the asset simply is not there.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFontNotFound) || errors.Is(err, ErrImageNotFound)
}
