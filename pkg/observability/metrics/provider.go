/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metrics defines the metrics surface of the exchange service.
package metrics

import (
	"time"

	"github.com/credentio/vce/internal/pkg/log"
)

// Logger used by the metrics providers.
var Logger = log.New("metrics-provider")

// Constants used by the metrics providers.
const (
	// Namespace is the metric namespace of the service.
	Namespace = "vce"

	// Crypto plain crypto operations.
	Crypto               = "crypto"
	CryptoSignTimeMetric = "crypto_sign_seconds"

	// Service operations.
	Service                      = "service"
	IssueCredentialTimeMetric    = "service_issueCredential_seconds"
	VerifyPresentationTimeMetric = "service_verifyPresentation_seconds"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	SignTime(value time.Duration)
	IssueCredentialTime(value time.Duration)
	VerifyPresentationTime(value time.Duration)
}
