/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package tokenstore stores single-use access tokens in redis.
package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/credentio/vce/pkg/service/issuance"
	"github.com/credentio/vce/pkg/storage/redis"
)

const keyPrefix = "access_token"

// Store stores access tokens in redis until they are consumed or their key
// TTL removes them.
type Store struct {
	redisClient *redis.Client
}

// New creates a new instance of Store.
func New(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

// Create stores the token keyed by its bearer value, with the key TTL set to
// the token's own expiry.
func (s *Store) Create(ctx context.Context, token *issuance.AccessToken) error {
	payload, err := json.Marshal(token.TokenData)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return errors.New("token already expired")
	}

	if err = s.redisClient.API().Set(ctx, resolveRedisKey(token.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("token set: %w", err)
	}

	return nil
}

// Consume atomically removes the token and returns its data. GETDEL makes
// the read-and-remove a single operation, so two concurrent consumers of the
// same token see exactly one success.
func (s *Store) Consume(ctx context.Context, token string) (*issuance.TokenData, error) {
	b, err := s.redisClient.API().GetDel(ctx, resolveRedisKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, issuance.ErrDataNotFound
		}

		return nil, fmt.Errorf("token get-del: %w", err)
	}

	var data issuance.TokenData

	if err = json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal token: %w", err)
	}

	// The key TTL tracks this timestamp; the check covers clock drift between
	// redis and the service.
	if data.ExpiresAt.Before(time.Now().UTC()) {
		return nil, issuance.ErrDataNotFound
	}

	return &data, nil
}

func resolveRedisKey(token string) string {
	return fmt.Sprintf("%s-%s", keyPrefix, token)
}
