/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	vcapi "github.com/credentio/vce/pkg/doc/vc"
)

// OfferID defines type for credential offer ID.
type OfferID string

// Offer is the credential offer handed to a wallet. The issuer creates an
// offer to convey the intention of issuing a credential with the given
// parameters. The offer is stored keyed by its pre-authorized code and its
// state is updated as the issuance progresses.
type Offer struct {
	ID OfferID
	OfferData
}

// OfferState tracks the offer through the redemption flow.
type OfferState int16

const (
	OfferStateUnknown     = OfferState(0)
	OfferStateCreated     = OfferState(1)
	OfferStateTokenIssued = OfferState(2)
	OfferStateConsumed    = OfferState(3)
)

// OfferData is the offer data stored in the underlying storage.
type OfferData struct {
	CredentialType   string
	Claims           *vcapi.ClaimSet
	SubjectID        string
	IssuerID         string
	PreAuthCode      string
	UserPin          string
	PinRequired      bool
	State            OfferState
	EnableRevocation bool
	WebHookURL       string
	CreatedAt        time.Time
	ExpiresAt        time.Time
}

// AccessToken is the single-use bearer grant minted when a pre-authorized
// code is redeemed.
type AccessToken struct {
	Token string
	TokenData
}

// TokenData is the token data stored in the underlying storage. SourceCode
// links the token back to the offer it was minted for.
type TokenData struct {
	SourceCode string
	ExpiresAt  time.Time
}

// OfferStore stores offers, keyed by offer ID and looked up by
// pre-authorized code.
type OfferStore offerStore

// TokenStore stores minted access tokens until they are consumed.
type TokenStore tokenStore

// ClaimSchema is a JSON schema registered for a credential type. Offer claims
// for that type are validated against it.
type ClaimSchema struct {
	ID     string
	Schema json.RawMessage
}

// CreateOfferRequest holds the parameters of a new credential offer.
type CreateOfferRequest struct {
	CredentialType   string
	Claims           *vcapi.ClaimSet
	SubjectID        string
	PinRequired      bool
	TTL              time.Duration
	EnableRevocation bool
	WebHookURL       string
}

// CreateOfferResponse is the stored offer plus the wallet-facing descriptor.
type CreateOfferResponse struct {
	Offer    *Offer
	OfferURL string
}

// IssueCredentialRequest holds the parameters of a credential request made
// with a redeemed access token.
type IssueCredentialRequest struct {
	AccessToken string
	// RequestedType, when set, must match the offered credential type.
	RequestedType string
	// RequestedFields, when non-empty, selects a subset of the offered claims.
	RequestedFields []string
	// HolderID is the subject identifier extracted from the wallet's proof of
	// possession. It wins over the offer's stored subject placeholder.
	HolderID string
	// StatusEntry is an optional pre-allocated revocation pointer. When nil
	// and a status list service is configured, the service allocates one.
	StatusEntry *vcapi.TypedID
}

// IssuedCredential is the signed credential returned to the wallet.
type IssuedCredential struct {
	// Token is the compact JWS envelope of the credential claims.
	Token string
	// Credential is the raw credential document carried inside the token.
	Credential *vcapi.Credential
}

// ServiceInterface defines the issuance flow.
type ServiceInterface interface {
	CreateOffer(ctx context.Context, req *CreateOfferRequest) (*CreateOfferResponse, error)
	RedeemCode(ctx context.Context, preAuthCode, suppliedPin string) (*AccessToken, error)
	IssueCredential(ctx context.Context, req *IssueCredentialRequest) (*IssuedCredential, error)
}

// credentialOffer is the self-describing descriptor serialized into the
// offer deep link for QR consumption.
type credentialOffer struct {
	OfferID         string    `json:"offer_id"`
	CredentialType  string    `json:"credential_type"`
	Issuer          string    `json:"issuer"`
	PreAuthCode     string    `json:"pre-authorized_code"`
	UserPinRequired bool      `json:"user_pin_required"`
	ExpiresAt       time.Time `json:"expires_at"`
}

func offerDeepLink(offer *Offer) (string, error) {
	descriptor, err := json.Marshal(&credentialOffer{
		OfferID:         string(offer.ID),
		CredentialType:  offer.CredentialType,
		Issuer:          offer.IssuerID,
		PreAuthCode:     offer.PreAuthCode,
		UserPinRequired: offer.PinRequired,
		ExpiresAt:       offer.ExpiresAt,
	})
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("credential_offer", string(descriptor))

	return "openid-credential-offer://?" + q.Encode(), nil
}

// EventPayload is the body attached to issuance lifecycle events.
type EventPayload struct {
	OfferID        string `json:"offerId,omitempty"`
	CredentialType string `json:"credentialType,omitempty"`
	CredentialID   string `json:"credentialId,omitempty"`
	WebHook        string `json:"webHook,omitempty"`
	Error          string `json:"error,omitempty"`
	ErrorComponent string `json:"errorComponent,omitempty"`
}
