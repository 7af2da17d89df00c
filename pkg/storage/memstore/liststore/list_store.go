/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package liststore stores published status list documents in process memory.
package liststore

import (
	"context"
	"sync"

	"github.com/credentio/vce/pkg/service/statuslist"
)

// Store keeps published list documents in memory, keyed by list URL.
type Store struct {
	mutex sync.RWMutex
	docs  map[string][]byte
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		docs: make(map[string][]byte),
	}
}

// Upsert stores the document under the list URL, replacing any previous
// version.
func (s *Store) Upsert(_ context.Context, listURL string, doc []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.docs[listURL] = append([]byte(nil), doc...)

	return nil
}

// Get returns the document stored under the list URL.
func (s *Store) Get(_ context.Context, listURL string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	doc, ok := s.docs[listURL]
	if !ok {
		return nil, statuslist.ErrDataNotFound
	}

	return append([]byte(nil), doc...), nil
}
