/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification

import "errors"

var (
	// ErrDataNotFound is returned by stores when no record exists for the
	// key, when the record has expired, or when a guarded update lost to a
	// concurrent state transition.
	ErrDataNotFound = errors.New("data not found")

	// ErrInvalidRequest marks caller-input errors. They are reported before
	// any store is touched.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRequestExpiredOrUnknown covers unknown, expired and already-verified
	// presentation requests. The three conditions are indistinguishable to
	// the caller.
	ErrRequestExpiredOrUnknown = errors.New("presentation request expired or unknown")
)
