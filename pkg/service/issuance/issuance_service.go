/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package issuance runs the pre-authorized credential issuance flow: offer
// creation, code redemption and credential signing.
package issuance

//go:generate mockgen -destination issuance_service_mocks_test.go -self_package mocks -package issuance_test -source=issuance_service.go -mock_names offerStore=MockOfferStore,tokenStore=MockTokenStore,eventService=MockEventService,pinGenerator=MockPinGenerator,claimsValidator=MockClaimsValidator,statusListService=MockStatusListService,credentialSigner=MockCredentialSigner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/credentio/vce/internal/logfields"
	"github.com/credentio/vce/internal/pkg/log"
	vcapi "github.com/credentio/vce/pkg/doc/vc"
	"github.com/credentio/vce/pkg/doc/vc/statustype"
	"github.com/credentio/vce/pkg/event/spi"
)

var logger = log.New("issuance-service")

const (
	defaultOfferTTL      = 30 * time.Minute
	defaultTokenTTL      = 5 * time.Minute
	defaultCredentialTTL = 365 * 24 * time.Hour

	eventSource = "source://vce/issuer"
)

type offerStore interface {
	Create(ctx context.Context, data *OfferData) (*Offer, error)
	FindByCode(ctx context.Context, preAuthCode string) (*Offer, error)
	// Update replaces the stored offer only while it is still in the
	// expected state, so concurrent transitions have exactly one winner.
	Update(ctx context.Context, offer *Offer, expected OfferState) error
}

type tokenStore interface {
	Create(ctx context.Context, token *AccessToken) error
	// Consume atomically removes the token. A token can be consumed once.
	Consume(ctx context.Context, token string) (*TokenData, error)
}

type eventService interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type pinGenerator interface {
	Generate() (string, error)
	Validate(pin, got string) bool
}

type claimsValidator interface {
	Validate(doc []byte, schemaID string, schema []byte) error
}

type statusListService interface {
	AllocateEntry(ctx context.Context, credentialID string) (*vcapi.TypedID, error)
}

type credentialSigner interface {
	Sign(ctx context.Context, payload []byte) (string, error)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	OfferStore        offerStore
	TokenStore        tokenStore
	EventService      eventService
	CredentialSigner  credentialSigner
	PinGenerator      pinGenerator
	ClaimsValidator   claimsValidator
	StatusListService statusListService
	ClaimSchemas      map[string]*ClaimSchema
	IssuerID          string
	EventTopic        string
	OfferTTL          time.Duration
	TokenTTL          time.Duration
	CredentialTTL     time.Duration
}

// Service implements the pre-authorized issuance flow.
type Service struct {
	offerStore        offerStore
	tokenStore        tokenStore
	eventSvc          eventService
	credentialSigner  credentialSigner
	pinGenerator      pinGenerator
	claimsValidator   claimsValidator
	statusListService statusListService
	claimSchemas      map[string]*ClaimSchema
	issuerID          string
	eventTopic        string
	offerTTL          time.Duration
	tokenTTL          time.Duration
	credentialTTL     time.Duration
}

// NewService returns a new Service instance.
func NewService(config *Config) *Service {
	s := &Service{
		offerStore:        config.OfferStore,
		tokenStore:        config.TokenStore,
		eventSvc:          config.EventService,
		credentialSigner:  config.CredentialSigner,
		pinGenerator:      config.PinGenerator,
		claimsValidator:   config.ClaimsValidator,
		statusListService: config.StatusListService,
		claimSchemas:      config.ClaimSchemas,
		issuerID:          config.IssuerID,
		eventTopic:        config.EventTopic,
		offerTTL:          config.OfferTTL,
		tokenTTL:          config.TokenTTL,
		credentialTTL:     config.CredentialTTL,
	}

	if s.eventTopic == "" {
		s.eventTopic = spi.IssuerEventTopic
	}

	if s.offerTTL == 0 {
		s.offerTTL = defaultOfferTTL
	}

	if s.tokenTTL == 0 {
		s.tokenTTL = defaultTokenTTL
	}

	if s.credentialTTL == 0 {
		s.credentialTTL = defaultCredentialTTL
	}

	return s
}

// CreateOffer stores a new offer for the given credential type and claims and
// returns it together with the wallet-facing deep link.
func (s *Service) CreateOffer(ctx context.Context, req *CreateOfferRequest) (*CreateOfferResponse, error) {
	if req.CredentialType == "" {
		return nil, fmt.Errorf("%w: credential type is required", ErrInvalidRequest)
	}

	if req.Claims == nil || req.Claims.Len() == 0 {
		return nil, fmt.Errorf("%w: claims are required", ErrInvalidRequest)
	}

	if err := s.validateClaims(req.CredentialType, req.Claims); err != nil {
		return nil, err
	}

	data := &OfferData{
		CredentialType:   req.CredentialType,
		Claims:           req.Claims,
		SubjectID:        req.SubjectID,
		IssuerID:         s.issuerID,
		PreAuthCode:      mintCode(),
		PinRequired:      req.PinRequired,
		State:            OfferStateCreated,
		EnableRevocation: req.EnableRevocation,
		WebHookURL:       req.WebHookURL,
	}

	if req.PinRequired {
		pin, err := s.pinGenerator.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate pin: %w", err)
		}

		data.UserPin = pin
	}

	ttl := req.TTL
	if ttl <= 0 {
		ttl = s.offerTTL
	}

	now := time.Now().UTC()
	data.CreatedAt = now
	data.ExpiresAt = now.Add(ttl)

	offer, err := s.offerStore.Create(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("store offer: %w", err)
	}

	offerURL, err := offerDeepLink(offer)
	if err != nil {
		return nil, fmt.Errorf("build offer deep link: %w", err)
	}

	if err = s.sendEvent(ctx, spi.IssuerOfferCreated, offer, ""); err != nil {
		return nil, err
	}

	logger.Info("created credential offer", logfields.WithOfferID(string(offer.ID)),
		logfields.WithCredentialType(offer.CredentialType))

	return &CreateOfferResponse{Offer: offer, OfferURL: offerURL}, nil
}

func (s *Service) validateClaims(credentialType string, claims *vcapi.ClaimSet) error {
	if s.claimsValidator == nil {
		return nil
	}

	schema, ok := s.claimSchemas[credentialType]
	if !ok {
		return nil
	}

	doc, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("marshal claims: %w", err)
	}

	if err = s.claimsValidator.Validate(doc, schema.ID, schema.Schema); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return nil
}

// RedeemCode exchanges a pre-authorized code for a single-use access token.
// This step is the single-use gate for the whole flow: two concurrent
// redemptions of the same code yield exactly one token.
func (s *Service) RedeemCode(ctx context.Context, preAuthCode, suppliedPin string) (*AccessToken, error) {
	offer, err := s.offerStore.FindByCode(ctx, preAuthCode)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return nil, ErrCodeNotFound
		}

		return nil, fmt.Errorf("find offer: %w", err)
	}

	if offer.State != OfferStateCreated {
		return nil, ErrCodeNotFound
	}

	// PIN outcomes are reported distinctly, but only after the code matched.
	if offer.PinRequired {
		if suppliedPin == "" {
			s.sendFailedEvent(ctx, offer, ErrPinRequired)

			return nil, ErrPinRequired
		}

		if !s.pinGenerator.Validate(offer.UserPin, suppliedPin) {
			s.sendFailedEvent(ctx, offer, ErrPinInvalid)

			return nil, ErrPinInvalid
		}
	} else if suppliedPin != "" {
		s.sendFailedEvent(ctx, offer, ErrPinInvalid)

		return nil, ErrPinInvalid
	}

	token := &AccessToken{
		Token: mintCode(),
		TokenData: TokenData{
			SourceCode: offer.PreAuthCode,
			ExpiresAt:  time.Now().UTC().Add(s.tokenTTL),
		},
	}

	offer.State = OfferStateTokenIssued
	// Keep the offer record alive for the token's lifetime.
	if token.ExpiresAt.After(offer.ExpiresAt) {
		offer.ExpiresAt = token.ExpiresAt
	}

	if err = s.offerStore.Update(ctx, offer, OfferStateCreated); err != nil {
		if errors.Is(err, ErrDataNotFound) {
			// The concurrent loser lands here: the state already moved on.
			return nil, ErrCodeNotFound
		}

		return nil, fmt.Errorf("update offer: %w", err)
	}

	if err = s.tokenStore.Create(ctx, token); err != nil {
		s.sendFailedEvent(ctx, offer, err)

		return nil, fmt.Errorf("store access token: %w", err)
	}

	if err = s.sendEvent(ctx, spi.IssuerCodeRedeemed, offer, ""); err != nil {
		return nil, err
	}

	return token, nil
}

// IssueCredential consumes the access token and returns the signed
// credential. The token is spent even when a later step fails: a retried
// call fails, it does not re-issue.
func (s *Service) IssueCredential(ctx context.Context, req *IssueCredentialRequest) (*IssuedCredential, error) {
	tokenData, err := s.tokenStore.Consume(ctx, req.AccessToken)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return nil, ErrTokenInvalid
		}

		return nil, fmt.Errorf("consume token: %w", err)
	}

	offer, err := s.offerStore.FindByCode(ctx, tokenData.SourceCode)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return nil, ErrTokenInvalid
		}

		return nil, fmt.Errorf("find offer: %w", err)
	}

	if offer.State != OfferStateTokenIssued {
		return nil, ErrTokenInvalid
	}

	if req.RequestedType != "" && req.RequestedType != offer.CredentialType {
		s.sendFailedEvent(ctx, offer, ErrInvalidRequest)

		return nil, fmt.Errorf("%w: credential type %q not offered", ErrInvalidRequest, req.RequestedType)
	}

	claims, err := selectClaims(offer.Claims, req.RequestedFields)
	if err != nil {
		s.sendFailedEvent(ctx, offer, err)

		return nil, err
	}

	credential, err := s.buildCredential(ctx, offer, req, claims)
	if err != nil {
		s.sendFailedEvent(ctx, offer, err)

		return nil, err
	}

	signed, err := s.signCredential(ctx, credential)
	if err != nil {
		s.sendFailedEvent(ctx, offer, err)

		return nil, fmt.Errorf("sign credential: %w", err)
	}

	offer.State = OfferStateConsumed

	if err = s.offerStore.Update(ctx, offer, OfferStateTokenIssued); err != nil {
		s.sendFailedEvent(ctx, offer, err)

		return nil, fmt.Errorf("consume offer: %w", err)
	}

	if err = s.sendEvent(ctx, spi.IssuerCredentialIssued, offer, credential.ID); err != nil {
		return nil, err
	}

	logger.Info("issued credential", logfields.WithOfferID(string(offer.ID)),
		logfields.WithCredentialID(credential.ID))

	return &IssuedCredential{Token: signed, Credential: credential}, nil
}

func (s *Service) buildCredential(
	ctx context.Context,
	offer *Offer,
	req *IssueCredentialRequest,
	claims *vcapi.ClaimSet,
) (*vcapi.Credential, error) {
	now := time.Now().UTC()
	expires := now.Add(s.credentialTTL)

	credential := &vcapi.Credential{
		Context: []string{vcapi.ContextV1},
		ID:      uuid.New().URN(),
		Types:   []string{vcapi.VCType, offer.CredentialType},
		Issuer:  offer.IssuerID,
		Issued:  &now,
		Expired: &expires,
		Subject: vcapi.Subject{
			ID:     offer.SubjectID,
			Claims: claims,
		},
	}

	// The holder binding proven by the wallet wins over the offer's stored
	// placeholder.
	if req.HolderID != "" {
		credential.Subject.ID = req.HolderID
	}

	statusEntry := req.StatusEntry

	if statusEntry == nil && offer.EnableRevocation {
		if s.statusListService == nil {
			return nil, errors.New("revocation requested but no status list service is configured")
		}

		entry, err := s.statusListService.AllocateEntry(ctx, credential.ID)
		if err != nil {
			return nil, fmt.Errorf("allocate status entry: %w", err)
		}

		statusEntry = entry
	}

	if statusEntry != nil {
		credential.Status = statusEntry
		credential.Context = append(credential.Context, statustype.StatusList2021Context)
	}

	return credential, nil
}

type credentialClaims struct {
	jwt.Claims
	Credential *vcapi.Credential `json:"vc"`
}

func (s *Service) signCredential(ctx context.Context, credential *vcapi.Credential) (string, error) {
	claims := credentialClaims{
		Claims: jwt.Claims{
			Issuer:   credential.Issuer,
			Subject:  credential.Subject.ID,
			ID:       credential.ID,
			IssuedAt: jwt.NewNumericDate(*credential.Issued),
			Expiry:   jwt.NewNumericDate(*credential.Expired),
		},
		Credential: credential,
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal credential claims: %w", err)
	}

	return s.credentialSigner.Sign(ctx, payload)
}

func selectClaims(offered *vcapi.ClaimSet, requested []string) (*vcapi.ClaimSet, error) {
	if len(requested) == 0 {
		return offered, nil
	}

	for _, name := range requested {
		if _, ok := offered.Get(name); !ok {
			return nil, fmt.Errorf("%w: claim %q not offered", ErrInvalidRequest, name)
		}
	}

	// Selection keeps the offer's claim order.
	selected := vcapi.NewClaimSet()

	for _, claim := range offered.Claims() {
		if !lo.Contains(requested, claim.Name) {
			continue
		}

		if err := selected.Set(claim.Name, claim.Value); err != nil {
			return nil, err
		}
	}

	return selected, nil
}

func mintCode() string {
	return uuid.NewString()
}

func createEvent(offer *Offer, eventType spi.EventType, credentialID string, e error) (*spi.Event, error) {
	ep := EventPayload{
		OfferID:        string(offer.ID),
		CredentialType: offer.CredentialType,
		CredentialID:   credentialID,
		WebHook:        offer.WebHookURL,
	}

	if e != nil {
		ep.Error = e.Error()
	}

	payload, err := json.Marshal(ep)
	if err != nil {
		return nil, err
	}

	event := spi.NewEventWithPayload(uuid.NewString(), eventSource, eventType, payload)
	event.TransactionID = string(offer.ID)

	return event, nil
}

func (s *Service) sendEvent(ctx context.Context, eventType spi.EventType, offer *Offer, credentialID string) error {
	event, err := createEvent(offer, eventType, credentialID, nil)
	if err != nil {
		return err
	}

	return s.eventSvc.Publish(ctx, s.eventTopic, event)
}

func (s *Service) sendFailedEvent(ctx context.Context, offer *Offer, e error) {
	event, err := createEvent(offer, spi.IssuerInteractionFailed, "", e)
	if err != nil {
		logger.Warn("Unable to create failure event", log.WithError(err))

		return
	}

	if err = s.eventSvc.Publish(ctx, s.eventTopic, event); err != nil {
		logger.Warn("Unable to send failure event", log.WithError(err))
	}
}
