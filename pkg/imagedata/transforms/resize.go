// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ResizeCrop resizes the smallest dimension of the image to size, preserving the ratio, and then
// crops the largest dimension at the center, resulting in a size x size image.
func ResizeCrop(size int) Step {
	return func(img image.Image) image.Image {
		// 1. Resize the smallest dimension to size, preserving ratio.
		width := img.Bounds().Dx()
		height := img.Bounds().Dy()
		if width < height {
			ratio := float64(width) / float64(size)
			width = size
			height = int(math.Round(float64(height) / ratio))
		} else if height < width {
			ratio := float64(height) / float64(size)
			height = size
			width = int(math.Round(float64(width) / ratio))
		} else {
			width = size
			height = size
		}
		var out image.Image = imaging.Resize(img, width, height, imaging.Linear)

		// 2. Crop at center the largest dimension to size.
		if width > height {
			start := (width - size) / 2
			out = imaging.Crop(out, image.Rect(start, 0, start+size, size))
		} else if height > width {
			start := (height - size) / 2
			out = imaging.Crop(out, image.Rect(0, start, size, start+size))
		}
		return out
	}
}

// Resize to exactly width x height, not preserving the ratio.
// If one of width or height is 0, the ratio is preserved for that dimension.
func Resize(width, height int) Step {
	return func(img image.Image) image.Image {
		return imaging.Resize(img, width, height, imaging.Linear)
	}
}

// Grayscale converts the image to gray, the result still has 3 (equal) color channels.
func Grayscale() Step {
	return func(img image.Image) image.Image {
		return imaging.Grayscale(img)
	}
}
