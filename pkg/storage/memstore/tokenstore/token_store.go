/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package tokenstore stores single-use access tokens in process memory.
package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/credentio/vce/pkg/service/issuance"
)

// Store keeps access tokens in memory until they are consumed or expire.
type Store struct {
	mutex  sync.Mutex
	tokens map[string]*issuance.AccessToken
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		tokens: make(map[string]*issuance.AccessToken),
	}
}

// Create stores the token keyed by its bearer value.
func (s *Store) Create(_ context.Context, token *issuance.AccessToken) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	clone := *token
	s.tokens[token.Token] = &clone

	return nil
}

// Consume atomically removes the token and returns its data. Expired tokens
// read as absent.
func (s *Store) Consume(_ context.Context, token string) (*issuance.TokenData, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored, ok := s.tokens[token]
	if !ok {
		return nil, issuance.ErrDataNotFound
	}

	delete(s.tokens, token)

	if stored.ExpiresAt.Before(time.Now().UTC()) {
		return nil, issuance.ErrDataNotFound
	}

	data := stored.TokenData

	return &data, nil
}
