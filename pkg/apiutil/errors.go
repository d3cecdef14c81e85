// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/absmach/dataprotection/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.New("invalid query parameters")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrEmptyBody indicates that the request body is empty.
	ErrEmptyBody = errors.New("empty request body")

	// ErrBodyTooLarge indicates that the request body exceeds the size limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrMalformedBody indicates that the request body could not be read.
	ErrMalformedBody = errors.New("malformed request body")
)
