// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package redis opens connections to the Redis server holding the key ring
// through either of the supported client libraries.
package redis

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	redisv8 "github.com/go-redis/redis/v8"
	"github.com/redis/go-redis/v9"
)

// MaxConnectWait bounds how long Ping keeps retrying at startup.
const MaxConnectWait = 30 * time.Second

// Pinger is satisfied by clients of both supported libraries.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a ping function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Connect create new RedisDB client and connect to RedisDB server.
func Connect(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return redis.NewClient(opts), nil
}

// ConnectV8 is Connect for the go-redis v8 client.
func ConnectV8(url string) (*redisv8.Client, error) {
	opts, err := redisv8.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return redisv8.NewClient(opts), nil
}

// WaitReady pings the server with exponential backoff until it answers,
// maxWait elapses or ctx is done.
func WaitReady(ctx context.Context, p Pinger, maxWait time.Duration) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxWait

	return backoff.Retry(func() error {
		return p.Ping(ctx)
	}, backoff.WithContext(bo, ctx))
}
