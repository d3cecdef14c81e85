// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package redisv9

import (
	"context"

	"github.com/absmach/dataprotection/keyring"
	"github.com/redis/go-redis/v9"
)

var _ keyring.ListClient = (*listClient)(nil)

type listClient struct {
	client redis.UniversalClient
}

// NewListClient adapts a Redis client to keyring.ListClient. PushHead issues
// LPUSH and Range issues LRANGE.
func NewListClient(client redis.UniversalClient) keyring.ListClient {
	return &listClient{client: client}
}

func (lc *listClient) PushHead(ctx context.Context, key, value string) error {
	return lc.client.LPush(ctx, key, value).Err()
}

func (lc *listClient) Range(ctx context.Context, key string, start, stop int64) ([]string, error) {
	vals, err := lc.client.LRange(ctx, key, start, stop).Result()
	if err == redis.Nil {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	return vals, nil
}
