/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package verifier_test -source=controller.go -mock_names verificationService=MockVerificationService

package verifier

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"

	"github.com/credentio/vce/internal/logfields"
	"github.com/credentio/vce/internal/pkg/log"
	"github.com/credentio/vce/pkg/observability/tracing/attributeutil"
	"github.com/credentio/vce/pkg/restapi/resterr"
	"github.com/credentio/vce/pkg/restapi/v1/util"
	"github.com/credentio/vce/pkg/service/verification"
)

const (
	// Media type of the serialized request object handed to the wallet.
	requestObjectContentType = "application/oauth-authz-req+jwt"
)

var logger = log.New("verifier-api")

type verificationService interface {
	CreateRequest(ctx context.Context, credentialTypes []string, purpose string,
		requiredFields []string) (*verification.CreateRequestResponse, error)
	GetRequestObject(ctx context.Context, state string) (string, error)
	VerifyPresentation(ctx context.Context, presentationToken, state string) (*verification.VerificationResult, error)
}

// Config holds the dependencies of the verifier API controller.
type Config struct {
	VerificationService verificationService
	Tracer              trace.Tracer
}

// Controller for the verifier API.
type Controller struct {
	verificationService verificationService
	tracer              trace.Tracer
}

// NewController creates a new verifier API controller.
func NewController(config *Config) *Controller {
	tracer := config.Tracer
	if tracer == nil {
		tracer = trace.NewNoopTracerProvider().Tracer("")
	}

	return &Controller{
		verificationService: config.VerificationService,
		tracer:              tracer,
	}
}

// PostVerifierRequests creates a presentation request.
// POST /verifier/requests.
func (c *Controller) PostVerifierRequests(e echo.Context) error {
	var body CreateRequestRequest

	if err := util.ReadBody(e, &body); err != nil {
		return err
	}

	resp, err := c.verificationService.CreateRequest(
		e.Request().Context(), body.CredentialTypes, body.Purpose, body.RequiredFields)
	if err != nil {
		return mapVerificationError("CreateRequest", err)
	}

	logger.Debug("presentation request created", logfields.WithRequestID(string(resp.Request.ID)),
		logfields.WithState(resp.Request.State))

	return util.WriteOutputWithCode(http.StatusCreated, e)(&CreateRequestResponse{
		RequestID:  string(resp.Request.ID),
		State:      resp.Request.State,
		RequestURL: resp.RequestURL,
		ExpiresAt:  resp.Request.ExpiresAt,
	}, nil)
}

// GetRequestObject serves the serialized request object for the wallet.
// GET /verifier/requests/:state/request-object.
func (c *Controller) GetRequestObject(e echo.Context, state string) error {
	token, err := c.verificationService.GetRequestObject(e.Request().Context(), state)
	if err != nil {
		return mapVerificationError("GetRequestObject", err)
	}

	return util.WriteRawOutputWithContentType(e)([]byte(token), requestObjectContentType, nil)
}

// PostVerifyPresentation verifies the wallet's signed presentation token.
// POST /verifier/presentations/:state/verify.
func (c *Controller) PostVerifyPresentation(e echo.Context, state string) error {
	var body VerifyPresentationRequest

	if err := util.ReadBody(e, &body); err != nil {
		return err
	}

	if body.VPToken == "" {
		return resterr.NewValidationError(resterr.ErrorCodeInvalidRequest, "vp_token",
			errors.New("missing presentation token"))
	}

	ctx, span := c.tracer.Start(e.Request().Context(), "VerifyPresentation")
	defer span.End()

	span.SetAttributes(attributeutil.JSON("verify_presentation_request", body, attributeutil.WithRedacted("vp_token")))

	result, err := c.verificationService.VerifyPresentation(ctx, body.VPToken, state)
	if err != nil {
		return mapVerificationError("VerifyPresentation", err)
	}

	resp := &VerifyPresentationResponse{
		Verified:         result.Verified,
		CredentialsValid: result.CredentialsValid,
		Reason:           result.Reason,
	}

	for _, check := range result.Checks {
		resp.Checks = append(resp.Checks, &CredentialCheck{
			CredentialID: check.CredentialID,
			Outcome:      string(check.Outcome),
		})
	}

	return util.WriteOutput(e)(resp, nil)
}

func mapVerificationError(operation string, err error) error {
	switch {
	case errors.Is(err, verification.ErrRequestExpiredOrUnknown):
		return resterr.NewCustomError(resterr.ErrorCodeRequestExpiredOrUnknown, err)
	case errors.Is(err, verification.ErrInvalidRequest):
		return resterr.NewCustomError(resterr.ErrorCodeInvalidRequest, err)
	default:
		return resterr.NewSystemError(resterr.VerificationSvcComponent, operation, err)
	}
}
