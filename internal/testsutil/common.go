// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package testsutil

import (
	"fmt"
	"testing"

	"github.com/absmach/dataprotection/keyring"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

func GenerateUUID(t *testing.T) string {
	id, err := uuid.NewV4()
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	return id.String()
}

// ParseDocument parses raw and fails the test when it is not a valid document.
func ParseDocument(t *testing.T, raw string) keyring.Document {
	doc, err := keyring.ParseDocument(raw)
	require.Nil(t, err, fmt.Sprintf("unexpected error parsing %s: %s", raw, err))
	return doc
}
