// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/absmach/dataprotection/keyring"
)

var _ keyring.XMLRepository = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	repo   keyring.XMLRepository
}

// Logging adds logging facilities to the key ring repository.
func Logging(repo keyring.XMLRepository, logger *slog.Logger) keyring.XMLRepository {
	return &loggingMiddleware{
		logger: logger,
		repo:   repo,
	}
}

func (lm *loggingMiddleware) ReadAll(ctx context.Context) (docs []keyring.Document, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Read key ring failed", args...)
			return
		}
		args = append(args, slog.Int("documents", len(docs)))
		lm.logger.Info("Read key ring completed successfully", args...)
	}(time.Now())

	return lm.repo.ReadAll(ctx)
}

func (lm *loggingMiddleware) Append(ctx context.Context, doc keyring.Document, label string) (err error) {
	defer func(begin time.Time) {
		id, _ := doc.Attr("id")
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("document",
				slog.String("label", label),
				slog.String("element", doc.Name()),
				slog.String("id", id),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Append document failed", args...)
			return
		}
		lm.logger.Info("Append document completed successfully", args...)
	}(time.Now())

	return lm.repo.Append(ctx, doc, label)
}
