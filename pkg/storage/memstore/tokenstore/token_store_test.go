/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tokenstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/credentio/vce/pkg/service/issuance"
	"github.com/credentio/vce/pkg/storage/memstore/tokenstore"
)

func TestStore_ConsumeOnce(t *testing.T) {
	store := tokenstore.New()

	require.NoError(t, store.Create(context.Background(), newToken("token-1", time.Minute)))

	data, err := store.Consume(context.Background(), "token-1")
	require.NoError(t, err)
	require.Equal(t, "code-1", data.SourceCode)

	_, err = store.Consume(context.Background(), "token-1")
	require.ErrorIs(t, err, issuance.ErrDataNotFound)
}

func TestStore_Consume_NotFound(t *testing.T) {
	store := tokenstore.New()

	_, err := store.Consume(context.Background(), "missing")
	require.ErrorIs(t, err, issuance.ErrDataNotFound)
}

func TestStore_Consume_Expired(t *testing.T) {
	store := tokenstore.New()

	require.NoError(t, store.Create(context.Background(), newToken("token-1", -time.Second)))

	_, err := store.Consume(context.Background(), "token-1")
	require.ErrorIs(t, err, issuance.ErrDataNotFound)
}

func TestStore_Consume_Concurrent(t *testing.T) {
	store := tokenstore.New()

	require.NoError(t, store.Create(context.Background(), newToken("token-1", time.Minute)))

	var (
		wg      sync.WaitGroup
		mutex   sync.Mutex
		winners int
		losers  []error
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := store.Consume(context.Background(), "token-1")

			mutex.Lock()
			defer mutex.Unlock()

			if err != nil {
				losers = append(losers, err)
			} else {
				winners++
			}
		}()
	}

	wg.Wait()

	require.Equal(t, 1, winners)
	require.Len(t, losers, 19)

	for _, err := range losers {
		require.ErrorIs(t, err, issuance.ErrDataNotFound)
	}
}

func newToken(token string, ttl time.Duration) *issuance.AccessToken {
	return &issuance.AccessToken{
		Token: token,
		TokenData: issuance.TokenData{
			SourceCode: "code-1",
			ExpiresAt:  time.Now().UTC().Add(ttl),
		},
	}
}
