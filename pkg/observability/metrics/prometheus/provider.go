/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package prometheus provides the prometheus metrics implementation.
package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/credentio/vce/internal/pkg/log"
	"github.com/credentio/vce/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	if err := pp.httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("start metrics HTTP server: %w", err)
	}

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the prometheus metrics of the exchange service.
type PromMetrics struct {
	signTime            prometheus.Histogram
	issueCredentialTime prometheus.Histogram
	verifyPresTime      prometheus.Histogram
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		signTime:            newSignTime(),
		issueCredentialTime: newIssueCredentialTime(),
		verifyPresTime:      newVerifyPresentationTime(),
	}

	registerMetrics(pm)

	return pm
}

// SignTime records the time for sign.
func (pm *PromMetrics) SignTime(value time.Duration) {
	pm.signTime.Observe(value.Seconds())

	logger.Debug("crypto sign time", log.WithDuration(value))
}

// IssueCredentialTime records the time for the IssueCredential service call.
func (pm *PromMetrics) IssueCredentialTime(value time.Duration) {
	pm.issueCredentialTime.Observe(value.Seconds())

	logger.Debug("IssueCredential service call time", log.WithDuration(value))
}

// VerifyPresentationTime records the time for the VerifyPresentation service
// call.
func (pm *PromMetrics) VerifyPresentationTime(value time.Duration) {
	pm.verifyPresTime.Observe(value.Seconds())

	logger.Debug("VerifyPresentation service call time", log.WithDuration(value))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.signTime, pm.issueCredentialTime, pm.verifyPresTime,
	)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newSignTime() prometheus.Histogram {
	return newHistogram(
		metrics.Crypto, metrics.CryptoSignTimeMetric,
		"The time (in seconds) it takes to sign a payload.",
		nil,
	)
}

func newIssueCredentialTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.IssueCredentialTimeMetric,
		"The time (in seconds) it takes to issue a credential.",
		nil,
	)
}

func newVerifyPresentationTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.VerifyPresentationTimeMetric,
		"The time (in seconds) it takes to verify a presentation.",
		nil,
	)
}
