// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package imagedata provides index-addressable image datasets to feed a training loop:
//
//   - FolderDataset: image files found in one or more directories, decoded lazily on each access.
//   - ReplicatedDataset: one in-memory value repeated for an arbitrary epoch length.
//
// Both implement Dataset, the minimal contract (Len and At) a loader needs. Batching, shuffling and
// prefetching are left to the consumer, see NewTrainDataset to plug a Dataset into GoMLX's
// train.Dataset machinery (e.g.: datasets.Batch and datasets.Parallel).
//
// Example:
//
//	cfg := imagedata.Folder("~/work/sketches/cars", "~/work/sketches/boats").WithExtension("png")
//	ds, err := imagedata.NewFolderDataset(cfg, transforms.Then(
//		transforms.Chain(transforms.ResizeCrop(64)),
//		transforms.ToTensor(images.ToTensor(dtypes.Float32))))
//	if err != nil { ... }
//	trainDS := imagedata.NewTrainDataset("sketches", ds)
package imagedata

import "image"

// Dataset is an index-addressable collection of samples of type T.
//
// Implementations in this package are immutable after construction, and At can be called
// concurrently with any indices.
type Dataset[T any] interface {
	// Len returns the number of samples in one epoch.
	Len() int

	// At returns the sample at index, for 0 <= index < Len().
	At(index int) (T, error)
}

// Transform converts a decoded image to the representation the training pipeline expects
// (another image, a tensor, ...).
//
// It may be called concurrently from different goroutines: if it holds mutable state, it is
// responsible for its own synchronization.
type Transform[T any] func(img image.Image) (T, error)

// Decoder reads and decodes the image stored at path.
type Decoder func(path string) (image.Image, error)

// DefaultExtension used by Folder when no extension is configured.
const DefaultExtension = "jpeg"
