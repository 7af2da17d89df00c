/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package noop provides a no-op metrics implementation.
package noop

import (
	"time"

	"github.com/credentio/vce/pkg/observability/metrics"
)

// NoMetrics provides a no operation implementation of the Metrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) SignTime(_ time.Duration)               {}
func (n *NoMetrics) IssueCredentialTime(_ time.Duration)    {}
func (n *NoMetrics) VerifyPresentationTime(_ time.Duration) {}
