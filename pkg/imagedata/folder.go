// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package imagedata

import (
	"image"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gomlx/sketchdata/internal/fsutil"
	"github.com/gomlx/sketchdata/internal/metrics"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// FolderConfig holds the configuration of a FolderDataset. Create it with Folder, configure it
// with the With* methods, and build the dataset with Done or NewFolderDataset.
type FolderConfig struct {
	roots     []string
	extension string
	decoder   Decoder
}

// Folder returns a configuration for a FolderDataset reading images from the given root
// directories, in the given order.
//
// Only files directly inside each root (no recursion) are used.
func Folder(roots ...string) *FolderConfig {
	return &FolderConfig{
		roots:     slices.Clone(roots),
		extension: DefaultExtension,
		decoder:   DecodeFile,
	}
}

// WithExtension sets the file extension of the images to index (the files matching "*.<ext>").
// A leading "." is ignored. It defaults to DefaultExtension ("jpeg").
//
// Matching is case-sensitive: "jpeg" doesn't match "IMG.JPEG".
//
// It returns the updated configuration, so calls can be cascaded.
func (cfg *FolderConfig) WithExtension(ext string) *FolderConfig {
	cfg.extension = strings.TrimPrefix(ext, ".")
	return cfg
}

// WithDecoder sets the function used to read and decode each image. It defaults to DecodeFile.
//
// It returns the updated configuration, so calls can be cascaded.
func (cfg *FolderConfig) WithDecoder(decoder Decoder) *FolderConfig {
	cfg.decoder = decoder
	return cfg
}

// WithAutoOrientation makes the dataset apply the EXIF orientation of the images. See DecodeFileAutoOrient.
//
// It returns the updated configuration, so calls can be cascaded.
func (cfg *FolderConfig) WithAutoOrientation() *FolderConfig {
	cfg.decoder = DecodeFileAutoOrient
	return cfg
}

// Done builds a FolderDataset that yields the decoded images, without any transformation.
func (cfg *FolderConfig) Done() (*FolderDataset[image.Image], error) {
	return NewFolderDataset[image.Image](cfg, nil)
}

// FolderDataset is a Dataset of the image files found in a list of directories.
//
// The list of files is collected once at construction and never changes. Each call to At
// decodes the file again (there is no caching), and applies the transform, if one was given.
type FolderDataset[T any] struct {
	samples   []string
	extension string
	decoder   Decoder
	transform Transform[T]
}

var _ Dataset[image.Image] = (*FolderDataset[image.Image])(nil)

// NewFolderDataset builds a FolderDataset from cfg, applying transform to every decoded image.
//
// transform can only be nil if T is image.Image, in which case the decoded image is returned as is.
//
// For each root, in order, it checks that it exists and is a directory -- it fails with an error
// wrapping ErrInvalidRoot otherwise. The files of each root are sorted by their stem (name without
// extension), and the per-root lists are concatenated: there is no global sort across roots.
func NewFolderDataset[T any](cfg *FolderConfig, transform Transform[T]) (*FolderDataset[T], error) {
	if transform == nil {
		var zero T
		if _, ok := any(&zero).(*image.Image); !ok {
			return nil, errors.Errorf("imagedata.NewFolderDataset: a transform is required to produce %T samples", zero)
		}
	}
	if cfg.extension == "" {
		return nil, errors.New("imagedata.NewFolderDataset: empty file extension")
	}
	if cfg.decoder == nil {
		return nil, errors.New("imagedata.NewFolderDataset: nil decoder")
	}
	var samples []string
	for _, root := range cfg.roots {
		rootSamples, err := collectSamples(root, cfg.extension)
		if err != nil {
			return nil, err
		}
		samples = append(samples, rootSamples...)
	}
	metrics.SamplesIndexed.Set(float64(len(samples)))
	return &FolderDataset[T]{
		samples:   samples,
		extension: cfg.extension,
		decoder:   cfg.decoder,
		transform: transform,
	}, nil
}

// collectSamples returns the files "<root>/*.<ext>" sorted by stem.
func collectSamples(root, ext string) ([]string, error) {
	dir, err := fsutil.ReplaceTildeInDir(root)
	if err != nil {
		return nil, errors.WithMessagef(ErrInvalidRoot, "data root %q: %v", root, err)
	}
	isDir, err := fsutil.IsDir(dir)
	if err != nil {
		return nil, errors.WithMessagef(ErrInvalidRoot, "data root %q: %v", root, err)
	}
	if !isDir {
		return nil, errors.WithMessagef(ErrInvalidRoot, "data root %q does not exist or is not a directory", root)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list data root %q", root)
	}
	pattern := "*." + ext
	var samples []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid file extension %q", ext)
		}
		if matched {
			samples = append(samples, filepath.Join(dir, entry.Name()))
		}
	}
	slices.SortStableFunc(samples, func(a, b string) int {
		if c := strings.Compare(fsutil.Stem(a), fsutil.Stem(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	klog.V(1).Infof("imagedata: collected %d *.%s samples from %q", len(samples), ext, dir)
	return samples, nil
}

// Len implements Dataset. It returns the number of image files indexed.
func (ds *FolderDataset[T]) Len() int {
	return len(ds.samples)
}

// Extension of the indexed files, without the leading ".".
func (ds *FolderDataset[T]) Extension() string {
	return ds.extension
}

// Path returns the file path of the sample at index.
func (ds *FolderDataset[T]) Path(index int) (string, error) {
	if index < 0 || index >= len(ds.samples) {
		return "", errors.Wrapf(ErrIndexOutOfRange, "index %d not in [0, %d)", index, len(ds.samples))
	}
	return ds.samples[index], nil
}

// Samples returns a copy of the ordered list of file paths.
func (ds *FolderDataset[T]) Samples() []string {
	return slices.Clone(ds.samples)
}

// At implements Dataset. It decodes the image at index and applies the transform, if any.
//
// A failure to read or decode the file is returned as a *DecodeError, and it doesn't affect
// the dataset: other indices can still be accessed.
func (ds *FolderDataset[T]) At(index int) (sample T, err error) {
	path, err := ds.Path(index)
	if err != nil {
		return
	}
	img, err := ds.decoder(path)
	if err != nil {
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			err = &DecodeError{Path: path, Err: err}
		}
		return
	}
	if ds.transform == nil {
		// Only allowed when T is image.Image, checked in NewFolderDataset.
		return any(img).(T), nil
	}
	sample, err = ds.transform(img)
	if err != nil {
		err = errors.WithMessagef(err, "failed to transform sample #%d (%q)", index, path)
	}
	return
}
