package kbpdf

import (
	"errors"

	"github.com/alnah/go-kbpdf/internal/assets"
	"github.com/alnah/go-kbpdf/internal/dateutil"
)

// Sentinel errors for library operations.
var (
	// ErrSinkWrite indicates the rendered document could not be written.
	ErrSinkWrite = errors.New("writing document failed")

	// ErrRender indicates the PDF backend failed while laying out the document.
	ErrRender = errors.New("rendering document failed")

	// ErrInvalidAssetPath indicates WithAssetPath named an unusable directory.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrInvalidDateFormat indicates WithDateFormat was given a bad format.
	ErrInvalidDateFormat = dateutil.ErrInvalidDateFormat

	// ErrFontNotFound is returned by an AssetLoader that has no such font.
	ErrFontNotFound = assets.ErrFontNotFound

	// ErrImageNotFound is returned by an AssetLoader that has no such image.
	ErrImageNotFound = assets.ErrImageNotFound
)
