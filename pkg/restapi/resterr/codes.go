/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"net/http"
)

// ErrorCode is the stable caller-visible error code of the exchange API.
type ErrorCode string

const (
	// ErrorCodeInvalidRequest - the request is missing a required parameter or
	// is otherwise malformed.
	ErrorCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrorCodeUnauthorized - missing or invalid credentials on a protected endpoint.
	ErrorCodeUnauthorized ErrorCode = "unauthorized"

	// ErrorCodeCodeNotFound - the pre-authorized code does not match an offer
	// awaiting redemption. Unknown, expired and already-redeemed codes are
	// deliberately indistinguishable.
	ErrorCodeCodeNotFound ErrorCode = "code_not_found"

	// ErrorCodePinRequired - the offer requires a user PIN and none was supplied.
	ErrorCodePinRequired ErrorCode = "pin_required"

	// ErrorCodePinInvalid - the supplied PIN does not match, or a PIN was
	// supplied for an offer that requires none.
	ErrorCodePinInvalid ErrorCode = "pin_invalid"

	// ErrorCodeTokenInvalid - the access token does not match a redeemable
	// grant. Unknown, expired and already-used tokens are deliberately
	// indistinguishable.
	ErrorCodeTokenInvalid ErrorCode = "token_invalid"

	// ErrorCodeRequestExpiredOrUnknown - the presentation request does not
	// exist, has expired, or was already consumed by a successful verification.
	ErrorCodeRequestExpiredOrUnknown ErrorCode = "request_expired_or_unknown"

	// ErrorCodeDuplicateCredentialID - a status entry already exists for the
	// credential.
	ErrorCodeDuplicateCredentialID ErrorCode = "duplicate_credential_id"

	// ErrorCodeStatusListFull - every index of the status list is allocated.
	ErrorCodeStatusListFull ErrorCode = "status_list_full"

	// ErrorCodeStatusNotFound - no status entry exists for the credential.
	ErrorCodeStatusNotFound ErrorCode = "status_not_found"

	// ErrorCodeSystemError - an internal failure; never caused by caller input.
	ErrorCodeSystemError ErrorCode = "system-error"
)

// HTTPStatus maps the error code to its response status.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case ErrorCodeInvalidRequest, ErrorCodeCodeNotFound, ErrorCodePinRequired, ErrorCodePinInvalid:
		return http.StatusBadRequest
	case ErrorCodeUnauthorized, ErrorCodeTokenInvalid:
		return http.StatusUnauthorized
	case ErrorCodeRequestExpiredOrUnknown, ErrorCodeStatusNotFound:
		return http.StatusNotFound
	case ErrorCodeDuplicateCredentialID, ErrorCodeStatusListFull:
		return http.StatusConflict
	case ErrorCodeSystemError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewCustomError returns an error with the given code.
func NewCustomError(code ErrorCode, err error) *RFCError[ErrorCode] {
	return &RFCError[ErrorCode]{
		ErrorCode:  code,
		HTTPStatus: code.HTTPStatus(),
		Err:        err,
	}
}

// NewValidationError returns a caller-input error pointing at the offending value.
func NewValidationError(code ErrorCode, incorrectValue string, err error) *RFCError[ErrorCode] {
	return &RFCError[ErrorCode]{
		ErrorCode:      code,
		IncorrectValue: incorrectValue,
		HTTPStatus:     code.HTTPStatus(),
		Err:            err,
	}
}

// NewUnauthorizedError returns an unauthorized error.
func NewUnauthorizedError(err error) *RFCError[ErrorCode] {
	return NewCustomError(ErrorCodeUnauthorized, err)
}

// NewSystemError returns an internal error attributed to the failed component.
func NewSystemError(component Component, operation string, err error) *RFCError[ErrorCode] {
	return &RFCError[ErrorCode]{
		ErrorCode:      ErrorCodeSystemError,
		ErrorComponent: component,
		Operation:      operation,
		HTTPStatus:     http.StatusInternalServerError,
		Err:            err,
	}
}
