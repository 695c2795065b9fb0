// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package imagedata

import (
	"io"
	"sync"

	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gomlx/pkg/ml/train"
	"github.com/pkg/errors"
)

// TrainDataset implements GoMLX's train.Dataset on top of a Dataset of tensors, and yields one
// example at a time, in index order, until the end of the epoch (io.EOF).
//
// It is safe for concurrent calls to Yield, so it can be parallelized with datasets.Parallel and
// batched with datasets.Batch -- there is no batching or shuffling here.
//
// Each Yield returns as inputs the example tensor and a scalar int32 with its index. There are no labels.
type TrainDataset struct {
	name string
	ds   Dataset[*tensors.Tensor]

	keepOwnership bool

	mu   sync.Mutex
	next int
}

var _ train.Dataset = (*TrainDataset)(nil)

// NewTrainDataset wraps ds as a train.Dataset. See TrainDataset.
func NewTrainDataset(name string, ds Dataset[*tensors.Tensor]) *TrainDataset {
	return &TrainDataset{name: name, ds: ds}
}

// KeepOwnership marks the yielded example tensors as owned by the underlying Dataset: the
// training loop should not finalize them after use.
//
// This is required for a ReplicatedDataset, which yields the same tensor at every step.
//
// It returns the updated TrainDataset, so calls can be cascaded.
func (td *TrainDataset) KeepOwnership() *TrainDataset {
	td.keepOwnership = true
	return td
}

// IsOwnershipTransferred implements train.DatasetCustomOwnership.
func (td *TrainDataset) IsOwnershipTransferred() bool {
	return !td.keepOwnership
}

// FinalizeYieldsAfterUse reports whether the training loop can free the yielded tensors.
// Same as IsOwnershipTransferred.
func (td *TrainDataset) FinalizeYieldsAfterUse() bool {
	return !td.keepOwnership
}

// Name implements train.Dataset.
func (td *TrainDataset) Name() string {
	return td.name
}

// Reset implements train.Dataset. It restarts the epoch.
func (td *TrainDataset) Reset() {
	td.mu.Lock()
	td.next = 0
	td.mu.Unlock()
}

// nextIndex returns the next index and increments it, or -1 if the epoch is over.
func (td *TrainDataset) nextIndex() int {
	td.mu.Lock()
	defer td.mu.Unlock()
	if td.next >= td.ds.Len() {
		return -1
	}
	index := td.next
	td.next++
	return index
}

// Yield implements train.Dataset.
//
// It returns `td` as spec.
func (td *TrainDataset) Yield() (spec any, inputs []*tensors.Tensor, labels []*tensors.Tensor, err error) {
	spec = td
	index := td.nextIndex()
	if index < 0 {
		err = io.EOF
		return
	}
	example, err := td.ds.At(index)
	if err != nil {
		err = errors.WithMessagef(err, "dataset %q failed to read example #%d", td.name, index)
		return
	}
	inputs = []*tensors.Tensor{example, tensors.FromAnyValue(int32(index))}
	return
}
