package domain

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

// ImageMIMEPrefix is the only MIME type family accepted as input
const ImageMIMEPrefix = "image/"

// File is a file picked or dropped by the user, already read into memory
type File struct {
	Data []byte
	MIME string
	Name string
}

// IsImage reports whether the file's content type is an image type
func (f File) IsImage() bool {
	return IsImageMIME(f.MIME)
}

// Image is the session's representation of a loaded image
type Image struct {
	DataURI string
	Height  int
	MIME    string
	Name    string
	Size    int
	Width   int
	data    []byte
}

// IsImageMIME reports whether mime starts with "image/"
func IsImageMIME(mime string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mime)), ImageMIMEPrefix)
}

// NewImage decodes a file into an Image carrying a self-describing data URI.
// Dimensions are best effort: formats the standard decoders don't know (svg,
// webp) load with zero width and height.
func NewImage(f File) (*Image, error) {
	if !f.IsImage() {
		return nil, fmt.Errorf("%w: %q", ErrNotAnImage, f.MIME)
	}

	mime := strings.ToLower(strings.TrimSpace(f.MIME))
	img := &Image{
		DataURI: fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(f.Data)),
		MIME:    mime,
		Name:    f.Name,
		Size:    len(f.Data),
		data:    f.Data,
	}

	if cfg, _, err := image.DecodeConfig(bytes.NewReader(f.Data)); err == nil {
		img.Width = cfg.Width
		img.Height = cfg.Height
	}

	return img, nil
}

// Bytes returns the raw image bytes
func (i *Image) Bytes() []byte {
	return i.data
}

// Base64 returns the base64 payload of the data URI (without the prefix)
func (i *Image) Base64() string {
	if idx := strings.Index(i.DataURI, ";base64,"); idx != -1 {
		return i.DataURI[idx+len(";base64,"):]
	}
	return ""
}

// Format returns the MIME subtype, e.g. "png" for "image/png"
func (i *Image) Format() string {
	return strings.TrimPrefix(i.MIME, ImageMIMEPrefix)
}
