// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package keyring

import "github.com/absmach/dataprotection/pkg/errors"

var (
	// ErrMissingFactory indicates that no client factory was configured.
	ErrMissingFactory = errors.New("missing store client factory")

	// ErrMissingKeyName indicates that no list key name was configured.
	ErrMissingKeyName = errors.New("missing key ring list name")

	// ErrMissingClient indicates that no store client is available.
	ErrMissingClient = errors.New("missing store client")

	// ErrMalformedDocument indicates a data-integrity failure: a stored
	// element of the key ring is not well-formed XML.
	ErrMalformedDocument = errors.New("key ring contains a malformed document")

	// ErrInvalidXML indicates that the input is not a well-formed XML
	// document with a single root element.
	ErrInvalidXML = errors.New("invalid xml document")

	// ErrEmptyDocument indicates an attempt to store a zero Document.
	ErrEmptyDocument = errors.New("empty document")
)
