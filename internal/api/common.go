// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/absmach/dataprotection"
	"github.com/absmach/dataprotection/keyring"
	"github.com/absmach/dataprotection/pkg/apiutil"
	"github.com/absmach/dataprotection/pkg/errors"
)

const (
	// ContentType represents JSON content type.
	ContentType = "application/json"

	// XMLContentType represents XML content type.
	XMLContentType = "application/xml"

	LabelKey = "label"
)

// EncodeResponse encodes successful response.
func EncodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	if ar, ok := response.(dataprotection.Response); ok {
		for k, v := range ar.Headers() {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(ar.Code())

		if ar.Empty() {
			return nil
		}
	}

	return newEncoder(w).Encode(response)
}

// EncodeError encodes an error response.
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	var wrapper error
	if errors.Contains(err, apiutil.ErrValidation) {
		wrapper, err = errors.Unwrap(err)
	}

	w.Header().Set("Content-Type", ContentType)
	switch {
	case errors.Contains(err, keyring.ErrMalformedDocument):
		w.WriteHeader(http.StatusInternalServerError)

	case errors.Contains(err, keyring.ErrInvalidXML),
		errors.Contains(err, keyring.ErrEmptyDocument),
		errors.Contains(err, apiutil.ErrEmptyBody),
		errors.Contains(err, apiutil.ErrMalformedBody),
		errors.Contains(err, apiutil.ErrInvalidQueryParams),
		errors.Contains(err, apiutil.ErrValidation):
		err = unwrap(err)
		w.WriteHeader(http.StatusBadRequest)

	case errors.Contains(err, apiutil.ErrUnsupportedContentType):
		err = unwrap(err)
		w.WriteHeader(http.StatusUnsupportedMediaType)

	case errors.Contains(err, apiutil.ErrBodyTooLarge):
		err = unwrap(err)
		w.WriteHeader(http.StatusRequestEntityTooLarge)

	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if wrapper != nil {
		err = errors.Wrap(wrapper, err)
	}

	if errorVal, ok := err.(errors.Error); ok {
		if err := newEncoder(w).Encode(errorVal); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}

// newEncoder keeps markup in documents and error messages readable.
func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

func unwrap(err error) error {
	wrapper, err := errors.Unwrap(err)
	if wrapper != nil {
		return wrapper
	}
	return err
}
