/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package noncestore reserves nonces in process memory.
package noncestore

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	state    string
	expireAt time.Time
}

// Store keeps nonce reservations in memory. A reservation blocks the nonce
// until it expires.
type Store struct {
	mutex  sync.Mutex
	nonces map[string]entry
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		nonces: make(map[string]entry),
	}
}

// SetIfNotExist reserves the nonce unless a live reservation already holds it.
func (s *Store) SetIfNotExist(_ context.Context, nonce, state string, expiration time.Duration) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now().UTC()

	if existing, ok := s.nonces[nonce]; ok && existing.expireAt.After(now) {
		return false, nil
	}

	s.nonces[nonce] = entry{
		state:    state,
		expireAt: now.Add(expiration),
	}

	return true, nil
}
