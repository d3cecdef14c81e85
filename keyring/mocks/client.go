// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/absmach/dataprotection/keyring"
	"github.com/stretchr/testify/mock"
)

var _ keyring.ListClient = (*ListClient)(nil)

type ListClient struct {
	mock.Mock
}

func (m *ListClient) PushHead(ctx context.Context, key, value string) error {
	ret := m.Called(ctx, key, value)

	return ret.Error(0)
}

func (m *ListClient) Range(ctx context.Context, key string, start, stop int64) ([]string, error) {
	ret := m.Called(ctx, key, start, stop)

	var vals []string
	if v := ret.Get(0); v != nil {
		vals = v.([]string)
	}

	return vals, ret.Error(1)
}
