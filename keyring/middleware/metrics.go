// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/absmach/dataprotection/keyring"
	"github.com/go-kit/kit/metrics"
)

var _ keyring.XMLRepository = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	repo    keyring.XMLRepository
}

// Metrics instruments the repository by tracking request count and latency.
func Metrics(repo keyring.XMLRepository, counter metrics.Counter, latency metrics.Histogram) keyring.XMLRepository {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		repo:    repo,
	}
}

func (mm *metricsMiddleware) ReadAll(ctx context.Context) ([]keyring.Document, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "read_all").Add(1)
		mm.latency.With("method", "read_all").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.repo.ReadAll(ctx)
}

func (mm *metricsMiddleware) Append(ctx context.Context, doc keyring.Document, label string) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "append").Add(1)
		mm.latency.With("method", "append").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.repo.Append(ctx, doc, label)
}
