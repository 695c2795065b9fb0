// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package imagedata

import (
	"image"
	_ "image/gif"  // Register GIF decoder.
	_ "image/jpeg" // Register JPEG decoder.
	_ "image/png"  // Register PNG decoder.
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gomlx/sketchdata/internal/metrics"
	_ "golang.org/x/image/webp" // Register WebP decoder, imaging already registers BMP and TIFF.
)

// DecodeFile opens and decodes the image at path.
//
// The file is closed before returning, also on failure. Errors are returned as *DecodeError.
func DecodeFile(path string) (image.Image, error) {
	return decodeFile(path)
}

// DecodeFileAutoOrient is like DecodeFile, but it also applies the EXIF orientation tag
// (typical in photos taken with phones) to the decoded image.
func DecodeFileAutoOrient(path string) (image.Image, error) {
	return decodeFile(path, imaging.AutoOrientation(true))
}

func decodeFile(path string, opts ...imaging.DecodeOption) (img image.Image, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDecode(start, err) }()

	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()
	img, err = imaging.Decode(f, opts...)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}
