/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import "errors"

var (
	// ErrDataNotFound is returned by stores when no record exists for the
	// key, when the record has expired, or when a guarded update lost to a
	// concurrent state transition.
	ErrDataNotFound = errors.New("data not found")

	// ErrInvalidRequest marks caller-input errors. They are reported before
	// any store is touched.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCodeNotFound covers unknown, expired and already-redeemed codes.
	// The three conditions are indistinguishable to the caller.
	ErrCodeNotFound = errors.New("pre-authorized code not found")

	// ErrPinRequired is returned when the offer requires a PIN and none was
	// supplied.
	ErrPinRequired = errors.New("pin required")

	// ErrPinInvalid is returned when the supplied PIN does not match, or a
	// PIN was supplied for an offer that requires none.
	ErrPinInvalid = errors.New("pin invalid")

	// ErrTokenInvalid covers unknown, expired and already-used access tokens.
	// The three conditions are indistinguishable to the caller.
	ErrTokenInvalid = errors.New("token invalid")
)
