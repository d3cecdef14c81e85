// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"

	"github.com/absmach/dataprotection/keyring"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ keyring.XMLRepository = (*tracingMiddleware)(nil)

type tracingMiddleware struct {
	tracer trace.Tracer
	repo   keyring.XMLRepository
}

// Tracing returns a new key ring repository with tracing capabilities.
func Tracing(repo keyring.XMLRepository, tracer trace.Tracer) keyring.XMLRepository {
	return &tracingMiddleware{
		tracer: tracer,
		repo:   repo,
	}
}

func (tm *tracingMiddleware) ReadAll(ctx context.Context) (docs []keyring.Document, err error) {
	ctx, span := tm.tracer.Start(ctx, "read_all")
	defer func() {
		span.SetAttributes(attribute.Int("documents", len(docs)))
		endSpan(span, err)
	}()

	return tm.repo.ReadAll(ctx)
}

func (tm *tracingMiddleware) Append(ctx context.Context, doc keyring.Document, label string) (err error) {
	id, _ := doc.Attr("id")
	ctx, span := tm.tracer.Start(ctx, "append", trace.WithAttributes(
		attribute.String("label", label),
		attribute.String("element", doc.Name()),
		attribute.String("id", id),
	))
	defer func() {
		endSpan(span, err)
	}()

	return tm.repo.Append(ctx, doc, label)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
