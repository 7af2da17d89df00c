/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package requeststore stores presentation requests in process memory.
package requeststore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/credentio/vce/pkg/service/verification"
)

// Store keeps presentation requests in memory, keyed by state. Expired
// records are dropped lazily on lookup.
type Store struct {
	mutex    sync.Mutex
	requests map[string]*verification.PresentationRequest
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		requests: make(map[string]*verification.PresentationRequest),
	}
}

// Create stores the request and returns it with a generated ID.
func (s *Store) Create(_ context.Context, data *verification.RequestData) (*verification.PresentationRequest, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.requests[data.State]; ok {
		return nil, verification.ErrDataNotFound
	}

	request := &verification.PresentationRequest{
		ID:          verification.RequestID(uuid.NewString()),
		RequestData: *data,
	}

	clone, err := copyRequest(request)
	if err != nil {
		return nil, err
	}

	s.requests[request.State] = clone

	return request, nil
}

// GetByState returns the request stored under the state value.
func (s *Store) GetByState(_ context.Context, state string) (*verification.PresentationRequest, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	request, ok := s.requests[state]
	if !ok {
		return nil, verification.ErrDataNotFound
	}

	if request.ExpiresAt.Before(time.Now().UTC()) {
		delete(s.requests, state)

		return nil, verification.ErrDataNotFound
	}

	return copyRequest(request)
}

// Update replaces the stored request only while its verified flag still
// matches the expected value, so concurrent verifications have exactly one
// winner.
func (s *Store) Update(_ context.Context, request *verification.PresentationRequest, expected bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, ok := s.requests[request.State]
	if !ok || current.ID != request.ID {
		return verification.ErrDataNotFound
	}

	if current.ExpiresAt.Before(time.Now().UTC()) {
		delete(s.requests, request.State)

		return verification.ErrDataNotFound
	}

	if current.Verified != expected {
		return verification.ErrDataNotFound
	}

	clone, err := copyRequest(request)
	if err != nil {
		return err
	}

	s.requests[request.State] = clone

	return nil
}

// copyRequest clones the record so callers cannot mutate stored state in
// place. The definition pointer is shared; definitions are never mutated
// after they are stored.
func copyRequest(request *verification.PresentationRequest) (*verification.PresentationRequest, error) {
	var clone verification.PresentationRequest

	if err := copier.Copy(&clone, request); err != nil {
		return nil, err
	}

	return &clone, nil
}
