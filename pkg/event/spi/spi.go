/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"time"
)

const (
	// IssuerEventTopic issuer topic name.
	IssuerEventTopic = "vce-issuer"
	// VerifierEventTopic verifier topic name.
	VerifierEventTopic = "vce-verifier"
	// CredentialStatusEventTopic credential status topic name.
	CredentialStatusEventTopic = "vce-credentialstatus"
)

// EventType event type.
type EventType string

const (
	// IssuerOfferCreated is published when a credential offer is created.
	IssuerOfferCreated = EventType("issuer.offer-created.v1")
	// IssuerCodeRedeemed is published when a pre-authorized code is redeemed
	// for an access token.
	IssuerCodeRedeemed = EventType("issuer.code-redeemed.v1")
	// IssuerCredentialIssued is published when a credential is issued.
	IssuerCredentialIssued = EventType("issuer.credential-issued.v1")
	// IssuerInteractionFailed is published when an issuance step fails.
	IssuerInteractionFailed = EventType("issuer.interaction-failed.v1")

	// VerifierRequestCreated is published when a presentation request is created.
	VerifierRequestCreated = EventType("verifier.request-created.v1")
	// VerifierPresentationVerified is published on the first successful verification.
	VerifierPresentationVerified = EventType("verifier.presentation-verified.v1")
	// VerifierPresentationFailed is published when a presentation fails verification.
	VerifierPresentationFailed = EventType("verifier.presentation-failed.v1")

	// CredentialStatusEntryAllocated is published when a status entry is allocated.
	CredentialStatusEntryAllocated = EventType("credentialstatus.entry-allocated.v1")
	// CredentialStatusUpdated is published when a credential is revoked.
	CredentialStatusUpdated = EventType("credentialstatus.status-updated.v1")
)

type Payload []byte

type Event struct {
	// SpecVersion is spec version(required).
	SpecVersion string `json:"specVersion"`

	// ID identifies the event(required).
	ID string `json:"id"`

	// Source is URI for producer(required).
	Source string `json:"source"`

	// Type defines event type(required).
	Type EventType `json:"type"`

	// Time defines time of occurrence(required).
	Time time.Time `json:"time"`

	// DataContentType is data content type(optional).
	DataContentType string `json:"dataContentType,omitempty"`

	// Data defines message(optional).
	Data []byte `json:"data,omitempty"`

	// TransactionID defines transaction ID(optional).
	TransactionID string `json:"txnId,omitempty"`

	// Subject defines subject(optional).
	Subject string `json:"subject,omitempty"`
}

// Copy an event.
func (m *Event) Copy() *Event {
	return &Event{
		SpecVersion:     m.SpecVersion,
		ID:              m.ID,
		Source:          m.Source,
		Type:            m.Type,
		Time:            m.Time,
		DataContentType: m.DataContentType,
		Data:            m.Data,
		TransactionID:   m.TransactionID,
		Subject:         m.Subject,
	}
}

// NewEventWithPayload creates a new Event with payload.
func NewEventWithPayload(uuid string, source string, eventType EventType, payload Payload) *Event {
	event := NewEvent(uuid, source, eventType)

	event.Data = payload

	// all components publish json
	event.DataContentType = "application/json"

	return event
}

// NewEvent creates a new Event and sets all required fields.
func NewEvent(uuid string, source string, eventType EventType) *Event {
	return &Event{
		SpecVersion: "1.0",
		ID:          uuid,
		Source:      source,
		Type:        eventType,
		Time:        time.Now(),
	}
}
