/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package verification runs the presentation verification flow: request
// creation, request object serving and presentation token verification.
package verification

//go:generate mockgen -destination verification_service_mocks_test.go -self_package mocks -package verification_test -source=verification_service.go -mock_names requestStore=MockRequestStore,nonceStore=MockNonceStore,eventService=MockEventService,signerVerifier=MockSignerVerifier,statusChecker=MockStatusChecker,metricsProvider=MockMetricsProvider

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/credentio/vce/internal/logfields"
	"github.com/credentio/vce/internal/pkg/log"
	"github.com/credentio/vce/pkg/doc/presentation"
	vcapi "github.com/credentio/vce/pkg/doc/vc"
	"github.com/credentio/vce/pkg/event/spi"
)

var logger = log.New("verification-service")

const (
	defaultRequestTTL = 10 * time.Minute

	nonceSize  = 10
	maxRetries = 10

	eventSource = "source://vce/verifier"
)

type requestStore interface {
	Create(ctx context.Context, data *RequestData) (*PresentationRequest, error)
	GetByState(ctx context.Context, state string) (*PresentationRequest, error)
	// Update replaces the stored request only while its verified flag still
	// matches the expected value, so concurrent verifications have exactly
	// one winner.
	Update(ctx context.Context, request *PresentationRequest, expected bool) error
}

type nonceStore interface {
	SetIfNotExist(ctx context.Context, nonce, state string, expiration time.Duration) (bool, error)
}

type eventService interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type signerVerifier interface {
	Sign(ctx context.Context, payload []byte) (string, error)
	VerifySignatureAndClaims(ctx context.Context, token, expectedAudience, expectedNonce string) ([]byte, error)
}

type statusChecker interface {
	IsRevoked(ctx context.Context, credential *vcapi.Credential) (bool, error)
}

type metricsProvider interface {
	VerifyPresentationTime(value time.Duration)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	RequestStore   requestStore
	NonceStore     nonceStore
	EventService   eventService
	SignerVerifier signerVerifier
	StatusChecker  statusChecker
	Metrics        metricsProvider

	// VerifierID is this verifier's identity: the audience expected in
	// presentation tokens and the issuer of signed request objects.
	VerifierID string
	// RequestObjectEndpoint is the public base URL serving request objects.
	RequestObjectEndpoint string
	EventTopic            string
	RequestTTL            time.Duration
}

// Service implements the presentation verification flow.
type Service struct {
	requestStore   requestStore
	nonceStore     nonceStore
	eventSvc       eventService
	signerVerifier signerVerifier
	statusChecker  statusChecker
	metrics        metricsProvider

	verifierID            string
	requestObjectEndpoint string
	eventTopic            string
	requestTTL            time.Duration
}

// NewService returns a new Service instance.
func NewService(config *Config) *Service {
	s := &Service{
		requestStore:          config.RequestStore,
		nonceStore:            config.NonceStore,
		eventSvc:              config.EventService,
		signerVerifier:        config.SignerVerifier,
		statusChecker:         config.StatusChecker,
		metrics:               config.Metrics,
		verifierID:            config.VerifierID,
		requestObjectEndpoint: config.RequestObjectEndpoint,
		eventTopic:            config.EventTopic,
		requestTTL:            config.RequestTTL,
	}

	if s.eventTopic == "" {
		s.eventTopic = spi.VerifierEventTopic
	}

	if s.requestTTL == 0 {
		s.requestTTL = defaultRequestTTL
	}

	if s.metrics == nil {
		s.metrics = &noopMetrics{}
	}

	return s
}

// CreateRequest stores a new presentation request asking for the given
// credential types and returns it together with the wallet-facing deep link.
// One input descriptor is built per required type, each carrying every
// required field path.
func (s *Service) CreateRequest(
	ctx context.Context,
	credentialTypes []string,
	purpose string,
	requiredFields []string,
) (*CreateRequestResponse, error) {
	if len(credentialTypes) == 0 {
		return nil, fmt.Errorf("%w: at least one credential type is required", ErrInvalidRequest)
	}

	if len(lo.Uniq(credentialTypes)) != len(credentialTypes) {
		return nil, fmt.Errorf("%w: duplicate credential type", ErrInvalidRequest)
	}

	definition := buildDefinition(credentialTypes, purpose, requiredFields)

	if err := definition.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	nonce, err := s.reserveNonce(ctx)
	if err != nil {
		return nil, err
	}

	state, err := genNonce()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	request, err := s.requestStore.Create(ctx, &RequestData{
		Nonce:      nonce,
		State:      state,
		Definition: definition,
		Purpose:    purpose,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.requestTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("store request: %w", err)
	}

	if err = s.sendEvent(ctx, spi.VerifierRequestCreated, request, nil); err != nil {
		return nil, err
	}

	logger.Info("created presentation request", logfields.WithRequestID(string(request.ID)),
		logfields.WithDefinitionID(definition.ID))

	return &CreateRequestResponse{
		Request:    request,
		RequestURL: "openid-vc://?request_uri=" + s.requestObjectEndpoint + "/" + state + "/request-object",
	}, nil
}

// GetRequestObject returns the signed request object for a pending request.
// The wallet dereferences the deep link's request_uri to fetch it.
func (s *Service) GetRequestObject(ctx context.Context, state string) (string, error) {
	request, err := s.loadPendingRequest(ctx, state)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()

	payload, err := json.Marshal(&RequestObject{
		JTI:          uuid.NewString(),
		IAT:          now.Unix(),
		ISS:          s.verifierID,
		ResponseType: "id_token",
		ResponseMode: "post",
		Nonce:        request.Nonce,
		ClientID:     s.verifierID,
		State:        request.State,
		Exp:          request.ExpiresAt.Unix(),
		Purpose:      request.Purpose,
		Claims: RequestObjectClaims{
			VPToken: VPToken{PresentationDefinition: request.Definition},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request object: %w", err)
	}

	token, err := s.signerVerifier.Sign(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("sign request object: %w", err)
	}

	return token, nil
}

// VerifyPresentation checks the presentation token against the request
// stored under state. Envelope failures (signature, expiry, audience, nonce,
// structure, definition match) yield verified=false and leave the request
// pending and retryable. A revoked credential yields verified=true with
// credentialsValid=false. The first successful run marks the request
// verified; later calls against the same state report it expired or unknown.
func (s *Service) VerifyPresentation(
	ctx context.Context,
	presentationToken, state string,
) (*VerificationResult, error) {
	startTime := time.Now()

	defer func() {
		s.metrics.VerifyPresentationTime(time.Since(startTime))
	}()

	request, err := s.loadPendingRequest(ctx, state)
	if err != nil {
		return nil, err
	}

	payload, err := s.signerVerifier.VerifySignatureAndClaims(ctx, presentationToken, s.verifierID, request.Nonce)
	if err != nil {
		return s.failVerification(ctx, request, err.Error()), nil
	}

	vp, err := presentation.ParseTokenPayload(payload)
	if err != nil {
		return s.failVerification(ctx, request, err.Error()), nil
	}

	if err = request.Definition.Match(vp.Credentials...); err != nil {
		return s.failVerification(ctx, request, err.Error()), nil
	}

	result := &VerificationResult{
		Verified:         true,
		CredentialsValid: true,
		Checks:           s.checkCredentialStatus(ctx, vp.Credentials),
	}

	for _, check := range result.Checks {
		if check.Outcome == StatusCheckRevoked {
			result.CredentialsValid = false
		}
	}

	request.Verified = true

	if err = s.requestStore.Update(ctx, request, false); err != nil {
		if errors.Is(err, ErrDataNotFound) {
			// A concurrent verification already consumed the request.
			return nil, ErrRequestExpiredOrUnknown
		}

		return nil, fmt.Errorf("mark request verified: %w", err)
	}

	if err = s.sendEvent(ctx, spi.VerifierPresentationVerified, request, result); err != nil {
		return nil, err
	}

	logger.Info("verified presentation", logfields.WithRequestID(string(request.ID)))

	return result, nil
}

func (s *Service) loadPendingRequest(ctx context.Context, state string) (*PresentationRequest, error) {
	request, err := s.requestStore.GetByState(ctx, state)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return nil, ErrRequestExpiredOrUnknown
		}

		return nil, fmt.Errorf("find request: %w", err)
	}

	if request.Verified {
		return nil, ErrRequestExpiredOrUnknown
	}

	return request, nil
}

// checkCredentialStatus runs the revocation check for every presented
// credential that carries a status pointer. Check failures degrade to
// could-not-confirm rather than failing the verification.
func (s *Service) checkCredentialStatus(ctx context.Context, credentials []*vcapi.Credential) []*CredentialCheck {
	var checks []*CredentialCheck

	for _, credential := range credentials {
		if credential.Status == nil {
			continue
		}

		check := &CredentialCheck{CredentialID: credential.ID}

		revoked, err := s.statusChecker.IsRevoked(ctx, credential)

		switch {
		case err != nil:
			check.Outcome = StatusCheckUnconfirmed

			logger.Warn("Unable to confirm credential status",
				logfields.WithCredentialID(credential.ID), log.WithError(err))
		case revoked:
			check.Outcome = StatusCheckRevoked
		default:
			check.Outcome = StatusCheckActive
		}

		checks = append(checks, check)
	}

	return checks
}

func (s *Service) failVerification(ctx context.Context, request *PresentationRequest, reason string) *VerificationResult {
	s.sendFailedEvent(ctx, request, errors.New(reason))

	logger.Info("presentation verification failed", logfields.WithRequestID(string(request.ID)),
		logfields.WithVerificationReason(reason))

	return &VerificationResult{Verified: false, Reason: reason}
}

func (s *Service) reserveNonce(ctx context.Context) (string, error) {
	for i := 1; i <= maxRetries; i++ {
		nonce, err := genNonce()
		if err != nil {
			return "", err
		}

		isSet, err := s.nonceStore.SetIfNotExist(ctx, nonce, "", s.requestTTL)
		if err != nil {
			return "", fmt.Errorf("reserve nonce: %w", err)
		}

		if isSet {
			return nonce, nil
		}
	}

	return "", fmt.Errorf("fail to set nonce after %d retries", maxRetries)
}

func genNonce() (string, error) {
	nonceBytes := make([]byte, nonceSize)

	if _, err := rand.Read(nonceBytes); err != nil {
		return "", fmt.Errorf("nonce generating random failed: %w", err)
	}

	return base64.URLEncoding.EncodeToString(nonceBytes), nil
}

func buildDefinition(credentialTypes []string, purpose string, requiredFields []string) *presentation.Definition {
	fields := make([]*presentation.Field, 0, len(requiredFields))

	for _, path := range requiredFields {
		fields = append(fields, &presentation.Field{Path: path})
	}

	descriptors := make([]*presentation.InputDescriptor, 0, len(credentialTypes))

	for _, credentialType := range credentialTypes {
		descriptors = append(descriptors, &presentation.InputDescriptor{
			ID:             credentialType,
			CredentialType: credentialType,
			Fields:         fields,
		})
	}

	return &presentation.Definition{
		ID:               uuid.NewString(),
		Purpose:          purpose,
		InputDescriptors: descriptors,
	}
}

func createEvent(
	request *PresentationRequest,
	eventType spi.EventType,
	result *VerificationResult,
	e error,
) (*spi.Event, error) {
	ep := EventPayload{
		RequestID: string(request.ID),
	}

	if request.Definition != nil {
		ep.DefinitionID = request.Definition.ID
	}

	if result != nil {
		ep.Verified = result.Verified
		ep.CredentialsValid = result.CredentialsValid
	}

	if e != nil {
		ep.Error = e.Error()
	}

	payload, err := json.Marshal(ep)
	if err != nil {
		return nil, err
	}

	event := spi.NewEventWithPayload(uuid.NewString(), eventSource, eventType, payload)
	event.TransactionID = string(request.ID)

	return event, nil
}

func (s *Service) sendEvent(
	ctx context.Context,
	eventType spi.EventType,
	request *PresentationRequest,
	result *VerificationResult,
) error {
	event, err := createEvent(request, eventType, result, nil)
	if err != nil {
		return err
	}

	return s.eventSvc.Publish(ctx, s.eventTopic, event)
}

func (s *Service) sendFailedEvent(ctx context.Context, request *PresentationRequest, e error) {
	event, err := createEvent(request, spi.VerifierPresentationFailed, nil, e)
	if err != nil {
		logger.Warn("Unable to create failure event", log.WithError(err))

		return
	}

	if err = s.eventSvc.Publish(ctx, s.eventTopic, event); err != nil {
		logger.Warn("Unable to send failure event", log.WithError(err))
	}
}

type noopMetrics struct{}

func (m *noopMetrics) VerifyPresentationTime(time.Duration) {}
