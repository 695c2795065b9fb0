// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package imagedata

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidRoot is returned (wrapped, with the offending path) when a dataset root doesn't
	// exist or is not a directory.
	ErrInvalidRoot = errors.New("invalid data root")

	// ErrIndexOutOfRange is returned (wrapped) when At is called with an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// DecodeError is returned when a sample file can't be opened or decoded.
//
// Err holds the underlying error (e.g.: image.ErrFormat, io.ErrUnexpectedEOF or a *fs.PathError).
type DecodeError struct {
	Path string
	Err  error
}

// Error implements error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error { return e.Err }
