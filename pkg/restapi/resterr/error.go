/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
)

var (
	// ErrDataNotFound is returned by stores when no record exists for the key,
	// or when the record has already expired.
	ErrDataNotFound = errors.New("data not found")

	// ErrDuplicateKey is returned by stores when a uniqueness constraint is violated.
	ErrDuplicateKey = errors.New("duplicate key")
)
