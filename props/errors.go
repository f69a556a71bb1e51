// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import "cogentcore.org/graphics/base/errors"

var (
	// ErrInvalidValue is returned when a value fails the type, shape
	// or range validation of a property.
	ErrInvalidValue = errors.New("invalid value")

	// ErrAmbiguousValue is returned when a keyword abbreviation matches
	// more than one option of a radio property.
	ErrAmbiguousValue = errors.New("ambiguous value")

	// ErrUnknownProperty is returned when a property name does not
	// resolve to any property.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrReadOnly is returned when setting a read-only property.
	ErrReadOnly = errors.New("read-only property")

	// ErrNotPermutation is returned when a new children list is not
	// a permutation of the visible children.
	ErrNotPermutation = errors.New("new children list must be a permutation of existing children with visible handles")

	// ErrInvalidHandle is returned when a handle property is set
	// to a value that is not a live handle.
	ErrInvalidHandle = errors.New("invalid graphics handle")

	// ErrReleased is returned when using a property whose cell
	// has been released.
	ErrReleased = errors.New("released property")
)
