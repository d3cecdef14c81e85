// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package redisv9

import (
	"context"

	"github.com/absmach/dataprotection/keyring"
	"github.com/redis/go-redis/v9"
)

// ClientFactory returns the Redis client used for a single operation.
type ClientFactory func(ctx context.Context) (redis.UniversalClient, error)

// NewRepository returns a key ring repository storing documents in the
// Redis list named key, acquiring a client from factory on every call.
func NewRepository(factory ClientFactory, key string) (*keyring.Repository, error) {
	if factory == nil {
		return nil, keyring.ErrMissingFactory
	}

	return keyring.NewRepository(func(ctx context.Context) (keyring.ListClient, error) {
		client, err := factory(ctx)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, keyring.ErrMissingClient
		}

		return NewListClient(client), nil
	}, key)
}

// NewClientRepository returns a key ring repository that uses client for
// every operation. The caller keeps ownership of the client.
func NewClientRepository(client redis.UniversalClient, key string) (*keyring.Repository, error) {
	if client == nil {
		return nil, keyring.ErrMissingClient
	}

	return keyring.NewRepository(keyring.StaticFactory(NewListClient(client)), key)
}

// NewDefaultRepository is NewClientRepository with keyring.DefaultKeyName.
func NewDefaultRepository(client redis.UniversalClient) (*keyring.Repository, error) {
	return NewClientRepository(client, keyring.DefaultKeyName)
}
