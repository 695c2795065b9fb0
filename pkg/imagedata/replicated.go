// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package imagedata

// ReplicatedDataset repeats one value (typically a single pre-processed training image) for an
// arbitrary epoch length. Used when training on a single image, where each step samples something
// else at random (e.g.: a diffusion time step), so replicating the image makes sense.
//
// At returns the very same value for every index, it is not copied: callers must not modify it
// in place.
type ReplicatedDataset[T any] struct {
	value    T
	epochLen int
}

var _ Dataset[int] = (*ReplicatedDataset[int])(nil)

// NewReplicated returns a dataset of length epochLen where every sample is value.
//
// epochLen is not validated: a negative value is the caller's responsibility.
func NewReplicated[T any](value T, epochLen int) *ReplicatedDataset[T] {
	return &ReplicatedDataset[T]{value: value, epochLen: epochLen}
}

// Len implements Dataset. It returns the epoch length given at construction.
func (ds *ReplicatedDataset[T]) Len() int {
	return ds.epochLen
}

// At implements Dataset. It returns the replicated value for any index, including indices
// outside [0, Len()). It never fails.
func (ds *ReplicatedDataset[T]) At(_ int) (T, error) {
	return ds.value, nil
}
