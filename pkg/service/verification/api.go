/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification

import (
	"context"
	"time"

	"github.com/credentio/vce/pkg/doc/presentation"
)

// RequestID defines type for presentation request ID.
type RequestID string

// PresentationRequest is the verifier-side record of one requested
// presentation. It is stored keyed by its state value; the wallet echoes the
// state back together with the signed presentation token.
type PresentationRequest struct {
	ID RequestID
	RequestData
}

// RequestData is the request data stored in the underlying storage. Nonce and
// state are generated independently of each other: the state routes the
// wallet's response to this record, the nonce binds the presentation token to
// it.
type RequestData struct {
	Nonce      string
	State      string
	Definition *presentation.Definition
	Purpose    string
	Verified   bool
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// RequestStore stores presentation requests keyed by state.
type RequestStore requestStore

// NonceStore reserves nonces so no two live requests share one.
type NonceStore nonceStore

// CreateRequestResponse is the stored request plus the wallet-facing deep
// link pointing at the signed request object.
type CreateRequestResponse struct {
	Request    *PresentationRequest
	RequestURL string
}

// StatusCheckOutcome is the per-credential result of the revocation check.
type StatusCheckOutcome string

const (
	// StatusCheckActive - the referenced bit reads unset.
	StatusCheckActive = StatusCheckOutcome("active")
	// StatusCheckRevoked - the referenced bit reads set.
	StatusCheckRevoked = StatusCheckOutcome("revoked")
	// StatusCheckUnconfirmed - the status list could not be fetched or
	// decoded. Never fatal to verification; the caller decides policy.
	StatusCheckUnconfirmed = StatusCheckOutcome("could-not-confirm")
)

// CredentialCheck records the revocation outcome for one presented
// credential. Credentials without a status pointer are not listed.
type CredentialCheck struct {
	CredentialID string
	Outcome      StatusCheckOutcome
}

// VerificationResult is the outcome of one verification attempt. Verified
// reports the envelope checks (signature, expiry, audience, nonce,
// structure, definition match); CredentialsValid turns false when a
// presented credential's revocation bit reads set.
type VerificationResult struct {
	Verified         bool
	CredentialsValid bool
	Reason           string
	Checks           []*CredentialCheck
}

// ServiceInterface defines the verification flow.
type ServiceInterface interface {
	CreateRequest(ctx context.Context, credentialTypes []string, purpose string, requiredFields []string) (*CreateRequestResponse, error)
	GetRequestObject(ctx context.Context, state string) (string, error)
	VerifyPresentation(ctx context.Context, presentationToken, state string) (*VerificationResult, error)
}

type RequestObjectClaims struct {
	VPToken VPToken `json:"vp_token"`
}

type VPToken struct {
	PresentationDefinition *presentation.Definition `json:"presentation_definition"`
}

// RequestObject represents the request object sent to the wallet. It carries
// the presentation definition that specifies what credentials should be sent
// back, and the nonce the wallet must echo inside the signed token.
type RequestObject struct {
	JTI          string              `json:"jti"`
	IAT          int64               `json:"iat"`
	ISS          string              `json:"iss"`
	ResponseType string              `json:"response_type"`
	ResponseMode string              `json:"response_mode"`
	Nonce        string              `json:"nonce"`
	ClientID     string              `json:"client_id"`
	State        string              `json:"state"`
	Exp          int64               `json:"exp"`
	Purpose      string              `json:"purpose,omitempty"`
	Claims       RequestObjectClaims `json:"claims"`
}

// EventPayload is the body attached to verification lifecycle events.
type EventPayload struct {
	RequestID        string `json:"requestId,omitempty"`
	DefinitionID     string `json:"definitionId,omitempty"`
	Verified         bool   `json:"verified"`
	CredentialsValid bool   `json:"credentialsValid"`
	Error            string `json:"error,omitempty"`
}
