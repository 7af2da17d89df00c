/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldClaimKeys          = "claimKeys"
	FieldCredentialID       = "credentialID"
	FieldCredentialType     = "credentialType"
	FieldDefinitionID       = "definitionID"
	FieldEvent              = "event"
	FieldIssuerID           = "issuerID"
	FieldJSONSchemaID       = "jsonSchemaID"
	FieldOfferID            = "offerID"
	FieldRequestID          = "requestID"
	FieldState              = "state"
	FieldStatusListIndex    = "statusListIndex"
	FieldStatusListURL      = "statusListURL"
	FieldTransactionID      = "transactionID"
	FieldVerificationReason = "verificationReason"
)

// WithClaimKeys sets the claim keys field.
func WithClaimKeys(claimKeys []string) zap.Field {
	return zap.Strings(FieldClaimKeys, claimKeys)
}

// WithCredentialID sets the credential ID field.
func WithCredentialID(credentialID string) zap.Field {
	return zap.String(FieldCredentialID, credentialID)
}

// WithCredentialType sets the credential type field.
func WithCredentialType(credentialType string) zap.Field {
	return zap.String(FieldCredentialType, credentialType)
}

// WithDefinitionID sets the presentation definition ID field.
func WithDefinitionID(definitionID string) zap.Field {
	return zap.String(FieldDefinitionID, definitionID)
}

// WithEvent sets the event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Any(FieldEvent, event)
}

// WithIssuerID sets the issuer ID field.
func WithIssuerID(issuerID string) zap.Field {
	return zap.String(FieldIssuerID, issuerID)
}

// WithJSONSchemaID sets the JSON schema ID field.
func WithJSONSchemaID(schemaID string) zap.Field {
	return zap.String(FieldJSONSchemaID, schemaID)
}

// WithOfferID sets the offer ID field.
func WithOfferID(offerID string) zap.Field {
	return zap.String(FieldOfferID, offerID)
}

// WithRequestID sets the presentation request ID field.
func WithRequestID(requestID string) zap.Field {
	return zap.String(FieldRequestID, requestID)
}

// WithState sets the state field.
func WithState(state string) zap.Field {
	return zap.String(FieldState, state)
}

// WithStatusListIndex sets the status list index field.
func WithStatusListIndex(index int) zap.Field {
	return zap.Int(FieldStatusListIndex, index)
}

// WithStatusListURL sets the status list URL field.
func WithStatusListURL(url string) zap.Field {
	return zap.String(FieldStatusListURL, url)
}

// WithTransactionID sets the transaction ID field.
func WithTransactionID(txID string) zap.Field {
	return zap.String(FieldTransactionID, txID)
}

// WithVerificationReason sets the verification failure reason field.
func WithVerificationReason(reason string) zap.Field {
	return zap.String(FieldVerificationReason, reason)
}
