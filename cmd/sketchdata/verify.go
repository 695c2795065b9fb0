package main

import (
	"image"

	"github.com/gomlx/sketchdata/internal/workerspool"
	"github.com/gomlx/sketchdata/pkg/imagedata"
	"github.com/schollz/progressbar/v3"
)

// verifyDataset decodes every sample of ds, parallelism at a time, and returns the errors of the
// samples that failed, in index order. bar can be nil.
func verifyDataset(ds imagedata.Dataset[image.Image], parallelism int, bar *progressbar.ProgressBar) []error {
	errs := make([]error, ds.Len())
	pool := workerspool.New(parallelism)
	for ii := range ds.Len() {
		pool.Go(func() {
			_, errs[ii] = ds.At(ii)
			if bar != nil {
				_ = bar.Add(1)
			}
		})
	}
	pool.Wait()

	var failures []error
	for _, err := range errs {
		if err != nil {
			failures = append(failures, err)
		}
	}
	return failures
}
