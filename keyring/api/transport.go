// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/absmach/dataprotection"
	"github.com/absmach/dataprotection/internal/api"
	"github.com/absmach/dataprotection/keyring"
	"github.com/absmach/dataprotection/pkg/apiutil"
	"github.com/absmach/dataprotection/pkg/errors"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	textXMLContentType = "text/xml"
	maxBodySize        = 1 << 20
)

// MakeHandler returns a HTTP handler for the key ring API endpoints.
func MakeHandler(repo keyring.XMLRepository, logger *slog.Logger, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux := chi.NewRouter()

	mux.Route("/keys", func(r chi.Router) {
		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			listDocumentsEndpoint(repo),
			decodeListDocumentsReq,
			api.EncodeResponse,
			opts...,
		), "list_documents").ServeHTTP)
		r.Post("/", otelhttp.NewHandler(kithttp.NewServer(
			appendDocumentEndpoint(repo),
			decodeAppendDocumentReq,
			api.EncodeResponse,
			opts...,
		), "append_document").ServeHTTP)
	})

	mux.Get("/health", dataprotection.Health("keyring", instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodeListDocumentsReq(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

func decodeAppendDocumentReq(_ context.Context, r *http.Request) (interface{}, error) {
	ct := r.Header.Get("Content-Type")
	if !strings.Contains(ct, api.XMLContentType) && !strings.Contains(ct, textXMLContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	label, err := apiutil.ReadStringQuery(r, api.LabelKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrBodyTooLarge)
		}
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(apiutil.ErrMalformedBody, err))
	}

	return appendDocumentReq{
		raw:   string(body),
		label: label,
	}, nil
}
