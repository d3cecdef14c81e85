// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/absmach/dataprotection/keyring"
	"github.com/stretchr/testify/mock"
)

var _ keyring.XMLRepository = (*Repository)(nil)

type Repository struct {
	mock.Mock
}

func (m *Repository) ReadAll(ctx context.Context) ([]keyring.Document, error) {
	ret := m.Called(ctx)

	var docs []keyring.Document
	if v := ret.Get(0); v != nil {
		docs = v.([]keyring.Document)
	}

	return docs, ret.Error(1)
}

func (m *Repository) Append(ctx context.Context, doc keyring.Document, label string) error {
	ret := m.Called(ctx, doc, label)

	return ret.Error(0)
}
