/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifier

import "time"

// CreateRequestRequest is the request model for creating a presentation request.
type CreateRequestRequest struct {
	// Credential types the presented credential must carry.
	CredentialTypes []string `json:"credential_types"`

	// Human-readable purpose relayed to the wallet.
	Purpose string `json:"purpose,omitempty"`

	// Claim names the presented credential must contain.
	RequiredFields []string `json:"required_fields,omitempty"`
}

// CreateRequestResponse is the response model for a created presentation request.
type CreateRequestResponse struct {
	RequestID string `json:"request_id"`

	// State routes the wallet's response back to this request.
	State string `json:"state"`

	// Deep link handed to the wallet, pointing at the request object.
	RequestURL string `json:"request_url"`

	ExpiresAt time.Time `json:"expires_at"`
}

// VerifyPresentationRequest is the request model of the verify endpoint.
type VerifyPresentationRequest struct {
	// Signed presentation token produced by the wallet.
	VPToken string `json:"vp_token"`
}

// CredentialCheck is the per-credential revocation outcome.
type CredentialCheck struct {
	CredentialID string `json:"credential_id"`
	Outcome      string `json:"outcome"`
}

// VerifyPresentationResponse is the response model of the verify endpoint.
type VerifyPresentationResponse struct {
	Verified         bool               `json:"verified"`
	CredentialsValid bool               `json:"credentials_valid"`
	Reason           string             `json:"reason,omitempty"`
	Checks           []*CredentialCheck `json:"checks,omitempty"`
}
