package imagedata

import (
	"io"
	"sort"
	"sync"
	"testing"

	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainDataset(t *testing.T) {
	example := tensors.FromAnyValue([]float32{1, 2, 3})
	td := NewTrainDataset("single", NewReplicated(example, 3)).KeepOwnership()
	assert.Equal(t, "single", td.Name())
	assert.False(t, td.IsOwnershipTransferred())
	assert.False(t, td.FinalizeYieldsAfterUse())

	for epoch := range 2 {
		for ii := range 3 {
			spec, inputs, labels, err := td.Yield()
			require.NoErrorf(t, err, "epoch %d, example %d", epoch, ii)
			assert.Same(t, td, spec)
			assert.Empty(t, labels)
			require.Len(t, inputs, 2)
			assert.Same(t, example, inputs[0])
			assert.Equal(t, int32(ii), inputs[1].Value())
		}
		_, _, _, err := td.Yield()
		require.ErrorIs(t, err, io.EOF)
		td.Reset()
	}

	// Negative length is an empty epoch.
	_, _, _, err := NewTrainDataset("negative", NewReplicated(example, -2)).Yield()
	require.ErrorIs(t, err, io.EOF)
}

func TestTrainDataset_Concurrent(t *testing.T) {
	const numExamples = 100
	td := NewTrainDataset("concurrent", NewReplicated(tensors.FromAnyValue(float32(7)), numExamples))
	assert.True(t, td.IsOwnershipTransferred())

	var mu sync.Mutex
	var seen []int
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				_, inputs, _, err := td.Yield()
				if err == io.EOF {
					return
				}
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				seen = append(seen, int(inputs[1].Value().(int32)))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	sort.Ints(seen)
	require.Len(t, seen, numExamples)
	for ii, index := range seen {
		require.Equal(t, ii, index)
	}
}

type failingDataset struct{}

func (failingDataset) Len() int { return 1 }
func (failingDataset) At(int) (*tensors.Tensor, error) {
	return nil, &DecodeError{Path: "x.jpeg", Err: io.ErrUnexpectedEOF}
}

func TestTrainDataset_Error(t *testing.T) {
	_, _, _, err := NewTrainDataset("failing", failingDataset{}).Yield()
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "failing")
}
