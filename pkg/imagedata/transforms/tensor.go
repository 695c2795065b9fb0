// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"image"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gomlx/pkg/core/tensors/images"
	"github.com/gomlx/sketchdata/pkg/imagedata"
	"github.com/pkg/errors"
)

// ToTensor returns a Transform that converts an image to a tensor shaped [height, width, channels],
// configured by cfg (dtype, max value, alpha channel). Example:
//
//	toTensor := transforms.ToTensor(images.ToTensor(dtypes.Float32).MaxValue(255))
//
// Conversion failures, reported by GoMLX with panics, are returned as errors.
func ToTensor(cfg *images.ToTensorConfig) imagedata.Transform[*tensors.Tensor] {
	return func(img image.Image) (t *tensors.Tensor, err error) {
		err = exceptions.TryCatch[error](func() { t = cfg.Single(img) })
		if err != nil {
			return nil, errors.WithMessage(err, "failed to convert image to tensor")
		}
		if t == nil {
			return nil, errors.New("failed to convert image to tensor: unsupported dtype")
		}
		return t, nil
	}
}
