/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	IssuanceSvcComponent     Component = "issuer.issuance-service"
	StatusListSvcComponent   Component = "issuer.status-list-service"
	VerificationSvcComponent Component = "verifier.verification-service"
	StatusCheckSvcComponent  Component = "verifier.status-check-service"

	OfferStoreComponent      Component = "offer-store"
	TokenStoreComponent      Component = "token-store"
	RequestStoreComponent    Component = "request-store"
	StatusListStoreComponent Component = "status-list-store"
	NonceStoreComponent      Component = "nonce-store"
	RedisComponent           Component = "redis-service"

	CryptoJWSSignerComponent Component = "crypto-jws-signer"
	ClaimsValidatorComponent Component = "claims-validator"
	EventBusComponent        Component = "event-bus"
)
