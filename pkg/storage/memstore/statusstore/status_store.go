/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package statusstore stores the status list allocation state in process
// memory.
package statusstore

import (
	"context"
	"sync"

	"github.com/credentio/vce/pkg/service/statuslist"
)

// Store keeps the single status list state document in memory.
type Store struct {
	mutex sync.Mutex
	state *statuslist.ListState
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Get returns the stored list state.
func (s *Store) Get(_ context.Context) (*statuslist.ListState, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.state == nil {
		return nil, statuslist.ErrDataNotFound
	}

	return copyState(s.state), nil
}

// Put replaces the stored list state.
func (s *Store) Put(_ context.Context, state *statuslist.ListState) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.state = copyState(state)

	return nil
}

// copyState clones the document including its entry map so callers cannot
// mutate stored state in place.
func copyState(state *statuslist.ListState) *statuslist.ListState {
	clone := *state
	clone.Entries = make(map[string]int, len(state.Entries))

	for id, index := range state.Entries {
		clone.Entries[id] = index
	}

	return &clone
}
