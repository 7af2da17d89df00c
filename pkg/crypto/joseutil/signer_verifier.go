/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package joseutil implements signing and verification of compact JWS tokens
// for credential and presentation payloads.
package joseutil

import (
	"context"
	"crypto"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"
)

var (
	// ErrSignatureInvalid is returned when the token signature does not verify.
	ErrSignatureInvalid = errors.New("signature invalid")
	// ErrTokenExpired is returned when the token carries an exp claim in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrAudienceMismatch is returned when the aud claim does not contain the
	// expected audience.
	ErrAudienceMismatch = errors.New("audience mismatch")
	// ErrNonceMismatch is returned when the nonce claim differs from the
	// expected nonce.
	ErrNonceMismatch = errors.New("nonce mismatch")
)

// KeyResolver returns the public key for the given key ID. The key ID is
// taken from the "kid" protected header of the token being verified.
type KeyResolver func(keyID string) (crypto.PublicKey, error)

type tokenClaims struct {
	jwt.Claims
	Nonce string `json:"nonce,omitempty"`
}

// Config holds the key material for SignerVerifier.
type Config struct {
	PrivateKey  ed25519.PrivateKey
	KeyID       string
	KeyResolver KeyResolver // defaults to the public half of PrivateKey
	Clock       func() time.Time
}

// SignerVerifier signs payloads into compact JWS tokens and verifies tokens
// presented by holders.
type SignerVerifier struct {
	signer   jose.Signer
	resolver KeyResolver
	now      func() time.Time
}

// New returns a SignerVerifier signing with the configured ed25519 key.
func New(config *Config) (*SignerVerifier, error) {
	if len(config.PrivateKey) != ed25519.PrivateKeySize {
		return nil, errors.New("ed25519 private key is required")
	}

	opts := (&jose.SignerOptions{}).WithType("JWT")
	if config.KeyID != "" {
		opts = opts.WithHeader(jose.HeaderKey("kid"), config.KeyID)
	}

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.EdDSA, Key: config.PrivateKey}, opts)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	resolver := config.KeyResolver
	if resolver == nil {
		publicKey := config.PrivateKey.Public()

		resolver = func(string) (crypto.PublicKey, error) {
			return publicKey, nil
		}
	}

	now := config.Clock
	if now == nil {
		now = time.Now
	}

	return &SignerVerifier{
		signer:   signer,
		resolver: resolver,
		now:      now,
	}, nil
}

// Sign signs the payload and returns the compact JWS serialization.
func (s *SignerVerifier) Sign(_ context.Context, payload []byte) (string, error) {
	jws, err := s.signer.Sign(payload)
	if err != nil {
		return "", fmt.Errorf("sign payload: %w", err)
	}

	token, err := jws.CompactSerialize()
	if err != nil {
		return "", fmt.Errorf("serialize token: %w", err)
	}

	return token, nil
}

// VerifySignatureAndClaims verifies the token signature and its registered
// claims, returning the token payload. The signing key is an embedded "jwk"
// protected header when present, otherwise resolved by "kid". Expiry is
// checked before audience, audience before nonce; an empty expected value
// skips its check.
func (s *SignerVerifier) VerifySignatureAndClaims(
	_ context.Context, token, expectedAudience, expectedNonce string) ([]byte, error) {
	jws, err := jose.ParseSigned(token)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	if len(jws.Signatures) == 0 {
		return nil, errors.New("token has no signature")
	}

	publicKey, err := s.verificationKey(jws.Signatures[0].Protected)
	if err != nil {
		return nil, err
	}

	payload, err := jws.Verify(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	var claims tokenClaims
	if err = json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("unmarshal token claims: %w", err)
	}

	if claims.Expiry != nil && !s.now().Before(claims.Expiry.Time()) {
		return nil, ErrTokenExpired
	}

	if expectedAudience != "" && !claims.Audience.Contains(expectedAudience) {
		return nil, ErrAudienceMismatch
	}

	if expectedNonce != "" && claims.Nonce != expectedNonce {
		return nil, ErrNonceMismatch
	}

	return payload, nil
}

func (s *SignerVerifier) verificationKey(header jose.Header) (crypto.PublicKey, error) {
	if header.JSONWebKey != nil {
		return header.JSONWebKey.Key, nil
	}

	publicKey, err := s.resolver(header.KeyID)
	if err != nil {
		return nil, fmt.Errorf("resolve key %q: %w", header.KeyID, err)
	}

	return publicKey, nil
}
