/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuer

import (
	"time"

	vcapi "github.com/credentio/vce/pkg/doc/vc"
)

// CreateOfferRequest is the request model for creating a credential offer.
type CreateOfferRequest struct {
	// Type of the credential being offered.
	CredentialType string `json:"credential_type"`

	// Claims to be embedded into the credential subject, in issuer-supplied order.
	Claims *vcapi.ClaimSet `json:"claims"`

	// Placeholder subject identifier, replaced by the wallet's proven holder id at issuance.
	SubjectID string `json:"subject_id,omitempty"`

	// Whether redeeming the offer requires a user PIN.
	PinRequired bool `json:"pin_required,omitempty"`

	// Offer lifetime in seconds. Zero selects the service default.
	TTLSeconds int `json:"ttl_seconds,omitempty"`

	// Whether the issued credential gets a revocation status entry.
	EnableRevocation bool `json:"enable_revocation,omitempty"`

	// URL notified of offer lifecycle events.
	WebhookURL string `json:"webhook_url,omitempty"`
}

// CreateOfferResponse is the response model for a created credential offer.
type CreateOfferResponse struct {
	OfferID string `json:"offer_id"`

	// Deep link handed to the wallet, carrying the offer descriptor.
	CredentialOfferURL string `json:"credential_offer_url"`

	PreAuthorizedCode string `json:"pre-authorized_code"`

	// Generated PIN, present only when the offer requires one. Conveyed to the
	// user out of band, never inside the offer descriptor.
	UserPin string `json:"user_pin,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
}

// AccessTokenResponse is the response model of the token endpoint.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// JWTProof carries the wallet's proof of possession.
type JWTProof struct {
	ProofType string `json:"proof_type"`
	JWT       string `json:"jwt"`
}

// CredentialRequest is the request model of the credential endpoint.
type CredentialRequest struct {
	Format string `json:"format,omitempty"`

	// Requested credential type. When set, it must match the offered type.
	CredentialType string `json:"credential_type,omitempty"`

	// Claim names to include. Empty means all offered claims.
	RequestedFields []string `json:"requested_fields,omitempty"`

	Proof *JWTProof `json:"proof,omitempty"`
}

// CredentialResponse is the response model of the credential endpoint.
type CredentialResponse struct {
	Format string `json:"format"`

	// Credential is the signed compact JWS envelope.
	Credential string `json:"credential"`
}

// RevokeCredentialRequest is the request model for revoking a credential.
type RevokeCredentialRequest struct {
	CredentialID string `json:"credential_id"`
}

// RevokeCredentialResponse reports the revocation outcome. Revoked is false
// when the bit was already set.
type RevokeCredentialResponse struct {
	CredentialID string `json:"credential_id"`
	Revoked      bool   `json:"revoked"`
}

// CredentialStatusResponse reports the current revocation bit of a credential.
type CredentialStatusResponse struct {
	CredentialID string `json:"credential_id"`
	Revoked      bool   `json:"revoked"`
}
