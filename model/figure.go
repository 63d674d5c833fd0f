package model

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Figure is an image, chart or diagram.
type Figure struct {
	Path            string // path on disk, if externalized
	Data            []byte // embedded image bytes
	MIMEType        string
	AltText         string
	LongDescription string
	Caption         string

	// NeedsAltText is true when the figure has no usable alternative
	// text and should be enriched.
	NeedsAltText bool

	// AltTextConfidence scores how trustworthy the current alt text is,
	// from 0 (none) to 1 (authored by a human).
	AltTextConfidence float64

	hash string
}

func (*Figure) blockContent() {}

// ContentHash returns the MD5 hex digest of the image bytes, computed
// once and cached. Figures without data return "" and stay out of
// redundancy detection; alt text is no substitute, since two distinct
// charts often share generated descriptions.
func (f *Figure) ContentHash() string {
	if f.hash != "" {
		return f.hash
	}
	if len(f.Data) == 0 {
		return ""
	}
	sum := md5.Sum(f.Data)
	f.hash = hex.EncodeToString(sum[:])
	return f.hash
}

// HasUsableAltText reports whether the existing alt text is long enough
// to be meaningful. Authoring tools commonly stamp single characters or
// short junk into the description field.
func (f *Figure) HasUsableAltText() bool {
	return len(strings.TrimSpace(f.AltText)) > 3
}

// Dimensions decodes the image header and returns the pixel width and
// height. PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func (f *Figure) Dimensions() (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(f.Data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
