/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package noncestore reserves nonces in redis.
package noncestore

import (
	"context"
	"fmt"
	"time"

	"github.com/credentio/vce/pkg/storage/redis"
)

const keyPrefix = "request_nonce"

// Store keeps nonce reservations in redis. A reservation blocks the nonce
// until its key TTL expires.
type Store struct {
	redisClient *redis.Client
}

// New creates a new instance of Store.
func New(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

// SetIfNotExist reserves the nonce unless a live reservation already holds
// it. SETNX makes the check-and-reserve a single operation.
func (s *Store) SetIfNotExist(ctx context.Context, nonce, state string, expiration time.Duration) (bool, error) {
	isSet, err := s.redisClient.API().SetNX(ctx, resolveRedisKey(nonce), state, expiration).Result()
	if err != nil {
		return false, fmt.Errorf("nonce setnx: %w", err)
	}

	return isSet, nil
}

func resolveRedisKey(nonce string) string {
	return fmt.Sprintf("%s-%s", keyPrefix, nonce)
}
