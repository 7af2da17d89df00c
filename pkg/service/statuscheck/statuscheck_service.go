/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package statuscheck resolves the revocation status of presented
// credentials: locally for lists this deployment publishes, over HTTP for
// lists owned by other issuers.
package statuscheck

//go:generate mockgen -destination statuscheck_service_mocks_test.go -self_package mocks -package statuscheck_test -source=statuscheck_service.go -mock_names httpClient=MockHTTPClient,localList=MockLocalList

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-jose/go-jose/v3"

	vcapi "github.com/credentio/vce/pkg/doc/vc"
	"github.com/credentio/vce/pkg/doc/vc/bitstring"
	"github.com/credentio/vce/pkg/doc/vc/statustype"
)

const defaultRetryCount = 3

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// localList reads status bits of the list this deployment publishes, without
// a network round trip.
type localList interface {
	CheckStatusAtIndex(ctx context.Context, index int) (bool, error)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	HTTPClient httpClient
	// LocalList serves lists published under LocalListURL.
	LocalList    localList
	LocalListURL string
	RetryCount   uint
}

// Service checks the status bit referenced by a credential's status entry.
type Service struct {
	httpClient   httpClient
	localList    localList
	localListURL string
	retryCount   uint
}

// NewService returns a new Service instance.
func NewService(config *Config) *Service {
	s := &Service{
		httpClient:   config.HTTPClient,
		localList:    config.LocalList,
		localListURL: config.LocalListURL,
		retryCount:   config.RetryCount,
	}

	if s.httpClient == nil {
		s.httpClient = http.DefaultClient
	}

	if s.retryCount == 0 {
		s.retryCount = defaultRetryCount
	}

	return s
}

// IsRevoked reads the status bit referenced by the credential's status entry.
// Any failure here is non-fatal to verification: the caller reports it as
// could-not-confirm.
func (s *Service) IsRevoked(ctx context.Context, credential *vcapi.Credential) (bool, error) {
	entry := credential.Status

	if err := statustype.ValidateEntry(entry); err != nil {
		return false, err
	}

	purpose, _ := entry.CustomFields[statustype.StatusPurpose].(string)
	if purpose != statustype.StatusPurposeRevocation {
		return false, fmt.Errorf("unsupported status purpose %q", purpose)
	}

	index, err := statustype.EntryIndex(entry)
	if err != nil {
		return false, err
	}

	listURL, err := statustype.EntryListURL(entry)
	if err != nil {
		return false, err
	}

	if s.localList != nil && listURL == s.localListURL {
		return s.localList.CheckStatusAtIndex(ctx, index)
	}

	encoded, err := s.FetchStatusListEncoding(ctx, listURL)
	if err != nil {
		return false, err
	}

	bits, err := bitstring.DecodeBits(encoded)
	if err != nil {
		return false, fmt.Errorf("decode status list: %w", err)
	}

	revoked, err := bits.Get(index)
	if err != nil {
		return false, fmt.Errorf("read status bit: %w", err)
	}

	return revoked, nil
}

// FetchStatusListEncoding fetches the published status list document and
// returns the encoded bit vector it wraps. Transient transport failures are
// retried with bounded exponential backoff.
func (s *Service) FetchStatusListEncoding(ctx context.Context, listURL string) (string, error) {
	var body []byte

	fetch := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return err
		}

		defer func() {
			if resp.Body != nil {
				_ = resp.Body.Close()
			}
		}()

		if resp.StatusCode != http.StatusOK {
			err = fmt.Errorf("unexpected status code %d", resp.StatusCode)

			if resp.StatusCode >= http.StatusInternalServerError {
				return err
			}

			return backoff.Permanent(err)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		return nil
	}

	err := backoff.Retry(fetch,
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(s.retryCount)), ctx))
	if err != nil {
		return "", fmt.Errorf("fetch status list %s: %w", listURL, err)
	}

	return decodeListDocument(body)
}

// decodeListDocument extracts the encoded bit vector from a fetched document:
// either the signed JWS publication or a bare status list credential JSON.
// The JWS payload is read without verifying the remote issuer's signature;
// the caller treats any inconsistency as could-not-confirm.
func decodeListDocument(doc []byte) (string, error) {
	trimmed := bytes.TrimSpace(doc)

	if len(trimmed) > 0 && trimmed[0] == '{' {
		return statustype.ParseListCredential(trimmed)
	}

	jws, err := jose.ParseSigned(string(trimmed))
	if err != nil {
		return "", fmt.Errorf("parse list document: %w", err)
	}

	var claims struct {
		Credential json.RawMessage `json:"vc"`
	}

	if err = json.Unmarshal(jws.UnsafePayloadWithoutVerification(), &claims); err != nil {
		return "", fmt.Errorf("unmarshal list claims: %w", err)
	}

	if len(claims.Credential) == 0 {
		return "", errors.New("list document has no vc claim")
	}

	return statustype.ParseListCredential(claims.Credential)
}
