/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import "errors"

var (
	// ErrDataNotFound is returned by stores when no record matches. The
	// service also returns it when no list has been initialized yet.
	ErrDataNotFound = errors.New("data not found")

	// ErrInvalidRequest marks caller-input errors. Nothing is stored when it
	// is returned.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDuplicateCredentialID is returned when a credential id already has an
	// allocated entry. Allocation never silently reassigns an index.
	ErrDuplicateCredentialID = errors.New("credential id already has a status entry")

	// ErrListFull is returned when every index of the list has been handed out.
	ErrListFull = errors.New("status list is full")
)
