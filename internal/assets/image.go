package assets

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"golang.org/x/image/webp"
)

// typeWebP marks input that must be converted before embedding.
const typeWebP = "WEBP"

// imageExtensions maps file extensions to image types, in lookup order.
var imageExtensions = []struct {
	ext string
	typ string
}{
	{".png", TypePNG},
	{".jpg", TypeJPG},
	{".jpeg", TypeJPG},
	{".gif", TypeGIF},
	{".webp", typeWebP},
}

// typeForPath returns the image type implied by a file extension, or "".
func typeForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range imageExtensions {
		if e.ext == ext {
			return e.typ
		}
	}
	return ""
}

// sniffImageType detects the image type from content.
func sniffImageType(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/png":
		return TypePNG
	case "image/jpeg":
		return TypeJPG
	case "image/gif":
		return TypeGIF
	case "image/webp":
		return typeWebP
	}
	return ""
}

// decodeImage returns data as an embeddable Image, converting WebP to PNG.
func decodeImage(name string, data []byte, typ string) (*Image, error) {
	switch typ {
	case TypePNG, TypeJPG, TypeGIF:
		return &Image{Data: data, Type: typ}, nil
	case typeWebP:
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedImage, name, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedImage, name, err)
		}
		return &Image{Data: buf.Bytes(), Type: TypePNG}, nil
	}
	return nil, fmt.Errorf("%w: %q: unknown format", ErrUnsupportedImage, name)
}
