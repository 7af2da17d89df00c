/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package issuer_test -source=controller.go -mock_names issuanceService=MockIssuanceService,statusListService=MockStatusListService

package issuer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/valyala/fastjson"
	"go.opentelemetry.io/otel/trace"

	"github.com/credentio/vce/internal/logfields"
	"github.com/credentio/vce/internal/pkg/log"
	"github.com/credentio/vce/pkg/observability/tracing/attributeutil"
	"github.com/credentio/vce/pkg/restapi/resterr"
	"github.com/credentio/vce/pkg/restapi/v1/util"
	"github.com/credentio/vce/pkg/service/issuance"
	"github.com/credentio/vce/pkg/service/statuslist"
)

const (
	preAuthorizedCodeGrantType = "urn:ietf:params:oauth:grant-type:pre-authorized_code"

	jwtVCFormat = "jwt_vc"

	defaultOfferTTL = 30 * time.Minute
)

var logger = log.New("issuer-api")

type issuanceService interface {
	CreateOffer(ctx context.Context, req *issuance.CreateOfferRequest) (*issuance.CreateOfferResponse, error)
	RedeemCode(ctx context.Context, preAuthCode, suppliedPin string) (*issuance.AccessToken, error)
	IssueCredential(ctx context.Context, req *issuance.IssueCredentialRequest) (*issuance.IssuedCredential, error)
}

type statusListService interface {
	Revoke(ctx context.Context, credentialID string) (bool, error)
	CheckStatus(ctx context.Context, credentialID string) (bool, error)
}

// Config holds the dependencies of the issuer API controller.
type Config struct {
	IssuanceService   issuanceService
	StatusListService statusListService
	Tracer            trace.Tracer
}

// Controller for the issuer API.
type Controller struct {
	issuanceService   issuanceService
	statusListService statusListService
	tracer            trace.Tracer
}

// NewController creates a new issuer API controller.
func NewController(config *Config) *Controller {
	tracer := config.Tracer
	if tracer == nil {
		tracer = trace.NewNoopTracerProvider().Tracer("")
	}

	return &Controller{
		issuanceService:   config.IssuanceService,
		statusListService: config.StatusListService,
		tracer:            tracer,
	}
}

// PostIssuerOffers creates a credential offer.
// POST /issuer/offers.
func (c *Controller) PostIssuerOffers(e echo.Context) error {
	var body CreateOfferRequest

	if err := util.ReadBody(e, &body); err != nil {
		return err
	}

	return util.WriteOutputWithCode(http.StatusCreated, e)(c.createOffer(e.Request().Context(), &body))
}

func (c *Controller) createOffer(ctx context.Context, body *CreateOfferRequest) (*CreateOfferResponse, error) {
	ttl := defaultOfferTTL
	if body.TTLSeconds > 0 {
		ttl = time.Duration(body.TTLSeconds) * time.Second
	}

	resp, err := c.issuanceService.CreateOffer(ctx, &issuance.CreateOfferRequest{
		CredentialType:   body.CredentialType,
		Claims:           body.Claims,
		SubjectID:        body.SubjectID,
		PinRequired:      body.PinRequired,
		TTL:              ttl,
		EnableRevocation: body.EnableRevocation,
		WebHookURL:       body.WebhookURL,
	})
	if err != nil {
		return nil, mapIssuanceError("CreateOffer", err)
	}

	logger.Debug("credential offer created", logfields.WithOfferID(string(resp.Offer.ID)),
		logfields.WithCredentialType(resp.Offer.CredentialType))

	return &CreateOfferResponse{
		OfferID:            string(resp.Offer.ID),
		CredentialOfferURL: resp.OfferURL,
		PreAuthorizedCode:  resp.Offer.PreAuthCode,
		UserPin:            resp.Offer.UserPin,
		ExpiresAt:          resp.Offer.ExpiresAt,
	}, nil
}

// PostOidcToken exchanges a pre-authorized code for an access token.
// POST /oidc/token.
func (c *Controller) PostOidcToken(e echo.Context) error {
	req := e.Request()

	ctx, span := c.tracer.Start(req.Context(), "OidcToken")
	defer span.End()

	grantType := e.FormValue("grant_type")
	if grantType != preAuthorizedCodeGrantType {
		return resterr.NewValidationError(resterr.ErrorCodeInvalidRequest, "grant_type",
			fmt.Errorf("unsupported grant type %q", grantType))
	}

	// Both spellings of the parameter are in circulation among wallets.
	code := e.FormValue("pre-authorized_code")
	if code == "" {
		code = e.FormValue("pre_authorized_code")
	}

	if code == "" {
		return resterr.NewValidationError(resterr.ErrorCodeInvalidRequest, "pre-authorized_code",
			errors.New("missing pre-authorized code"))
	}

	pin := e.FormValue("user_pin")
	if pin == "" {
		pin = e.FormValue("pin")
	}

	span.SetAttributes(attributeutil.FormParams("form_params", req.PostForm,
		attributeutil.WithRedacted("user_pin"), attributeutil.WithRedacted("pin")))

	token, err := c.issuanceService.RedeemCode(ctx, code, pin)
	if err != nil {
		return mapIssuanceError("RedeemCode", err)
	}

	expiresIn := int(time.Until(token.ExpiresAt).Seconds())

	return util.WriteOutput(e)(&AccessTokenResponse{
		AccessToken: token.Token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil)
}

// PostOidcCredential issues the offered credential against a redeemed access token.
// POST /oidc/credential.
func (c *Controller) PostOidcCredential(e echo.Context) error {
	accessToken, err := bearerToken(e.Request())
	if err != nil {
		return resterr.NewUnauthorizedError(err)
	}

	var body CredentialRequest

	if err = util.ReadBody(e, &body); err != nil {
		return err
	}

	ctx, span := c.tracer.Start(e.Request().Context(), "OidcCredential")
	defer span.End()

	span.SetAttributes(attributeutil.JSON("credential_request", body, attributeutil.WithRedacted("proof.jwt")))

	return util.WriteOutput(e)(c.issueCredential(ctx, accessToken, &body))
}

func (c *Controller) issueCredential(
	ctx context.Context, accessToken string, body *CredentialRequest) (*CredentialResponse, error) {
	if body.Format != "" && body.Format != jwtVCFormat {
		return nil, resterr.NewValidationError(resterr.ErrorCodeInvalidRequest, "format",
			fmt.Errorf("unsupported format %q", body.Format))
	}

	var holderID string

	if body.Proof != nil {
		var err error

		holderID, err = holderFromProof(body.Proof)
		if err != nil {
			return nil, resterr.NewValidationError(resterr.ErrorCodeInvalidRequest, "proof.jwt", err)
		}
	}

	issued, err := c.issuanceService.IssueCredential(ctx, &issuance.IssueCredentialRequest{
		AccessToken:     accessToken,
		RequestedType:   body.CredentialType,
		RequestedFields: body.RequestedFields,
		HolderID:        holderID,
	})
	if err != nil {
		return nil, mapIssuanceError("IssueCredential", err)
	}

	logger.Debug("credential issued", logfields.WithCredentialID(issued.Credential.ID))

	return &CredentialResponse{
		Format:     jwtVCFormat,
		Credential: issued.Token,
	}, nil
}

// PostCredentialsRevoke flips the revocation bit of an issued credential.
// POST /issuer/credentials/revoke.
func (c *Controller) PostCredentialsRevoke(e echo.Context) error {
	var body RevokeCredentialRequest

	if err := util.ReadBody(e, &body); err != nil {
		return err
	}

	if body.CredentialID == "" {
		return resterr.NewValidationError(resterr.ErrorCodeInvalidRequest, "credential_id",
			errors.New("missing credential id"))
	}

	revoked, err := c.statusListService.Revoke(e.Request().Context(), body.CredentialID)
	if err != nil {
		return mapStatusListError("Revoke", err)
	}

	logger.Info("credential revoked", logfields.WithCredentialID(body.CredentialID))

	return util.WriteOutput(e)(&RevokeCredentialResponse{
		CredentialID: body.CredentialID,
		Revoked:      revoked,
	}, nil)
}

// GetCredentialStatus reads the revocation bit of an issued credential.
// GET /issuer/credentials/:credentialID/status.
func (c *Controller) GetCredentialStatus(e echo.Context, credentialID string) error {
	revoked, err := c.statusListService.CheckStatus(e.Request().Context(), credentialID)
	if err != nil {
		return mapStatusListError("CheckStatus", err)
	}

	return util.WriteOutput(e)(&CredentialStatusResponse{
		CredentialID: credentialID,
		Revoked:      revoked,
	}, nil)
}

func bearerToken(req *http.Request) (string, error) {
	auth := req.Header.Get("Authorization")
	if auth == "" {
		return "", errors.New("missing authorization header")
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", errors.New("authorization header is not a bearer token")
	}

	return strings.TrimPrefix(auth, prefix), nil
}

// holderFromProof extracts the holder identifier from the proof JWT payload.
// The envelope is not signature-checked here: the proof's "iss" claim is taken
// as the holder binding the same way the offer's subject placeholder would be.
func holderFromProof(proof *JWTProof) (string, error) {
	if proof.JWT == "" {
		return "", errors.New("missing proof jwt")
	}

	parts := strings.Split(proof.JWT, ".")
	if len(parts) != 3 {
		return "", errors.New("proof jwt is not a compact jws")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("decode proof jwt payload: %w", err)
	}

	v, err := fastjson.ParseBytes(payload)
	if err != nil {
		return "", fmt.Errorf("parse proof jwt payload: %w", err)
	}

	holder := string(v.GetStringBytes("iss"))
	if holder == "" {
		holder = string(v.GetStringBytes("did"))
	}

	if holder == "" {
		return "", errors.New("proof jwt carries no holder identifier")
	}

	return holder, nil
}

func mapIssuanceError(operation string, err error) error {
	switch {
	case errors.Is(err, issuance.ErrCodeNotFound):
		return resterr.NewCustomError(resterr.ErrorCodeCodeNotFound, err)
	case errors.Is(err, issuance.ErrPinRequired):
		return resterr.NewCustomError(resterr.ErrorCodePinRequired, err)
	case errors.Is(err, issuance.ErrPinInvalid):
		return resterr.NewCustomError(resterr.ErrorCodePinInvalid, err)
	case errors.Is(err, issuance.ErrTokenInvalid):
		return resterr.NewCustomError(resterr.ErrorCodeTokenInvalid, err)
	case errors.Is(err, issuance.ErrInvalidRequest):
		return resterr.NewCustomError(resterr.ErrorCodeInvalidRequest, err)
	default:
		return resterr.NewSystemError(resterr.IssuanceSvcComponent, operation, err)
	}
}

func mapStatusListError(operation string, err error) error {
	switch {
	case errors.Is(err, statuslist.ErrDataNotFound):
		return resterr.NewCustomError(resterr.ErrorCodeStatusNotFound, err)
	case errors.Is(err, statuslist.ErrDuplicateCredentialID):
		return resterr.NewCustomError(resterr.ErrorCodeDuplicateCredentialID, err)
	case errors.Is(err, statuslist.ErrListFull):
		return resterr.NewCustomError(resterr.ErrorCodeStatusListFull, err)
	case errors.Is(err, statuslist.ErrInvalidRequest):
		return resterr.NewCustomError(resterr.ErrorCodeInvalidRequest, err)
	default:
		return resterr.NewSystemError(resterr.StatusListSvcComponent, operation, err)
	}
}
