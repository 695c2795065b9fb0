// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package transforms implements common imagedata.Transform functions: resizing, cropping,
// grayscale conversion and conversion to GoMLX tensors, and ways to chain them.
package transforms

import (
	"image"

	"github.com/gomlx/sketchdata/pkg/imagedata"
)

// Step is an image to image transformation that can't fail.
type Step func(img image.Image) image.Image

// Chain returns a Transform that applies the steps in order.
// With no steps it returns the image unchanged.
func Chain(steps ...Step) imagedata.Transform[image.Image] {
	return func(img image.Image) (image.Image, error) {
		for _, step := range steps {
			img = step(img)
		}
		return img, nil
	}
}

// Then returns a Transform that applies first and then next to its result.
//
// Typically used to pre-process an image and finally convert it to a tensor:
//
//	transforms.Then(transforms.Chain(transforms.ResizeCrop(64)), transforms.ToTensor(images.ToTensor(dtypes.Float32)))
func Then[T any](first imagedata.Transform[image.Image], next imagedata.Transform[T]) imagedata.Transform[T] {
	return func(img image.Image) (out T, err error) {
		img, err = first(img)
		if err != nil {
			return
		}
		return next(img)
	}
}
