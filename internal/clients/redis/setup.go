// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package redis

import (
	"context"
	"io"

	"github.com/absmach/dataprotection/keyring"
	"github.com/absmach/dataprotection/keyring/redisv8"
	"github.com/absmach/dataprotection/keyring/redisv9"
	"github.com/absmach/dataprotection/pkg/errors"
)

const (
	// ClientV8 selects the github.com/go-redis/redis/v8 client.
	ClientV8 = "v8"
	// ClientV9 selects the github.com/redis/go-redis/v9 client.
	ClientV9 = "v9"
)

var (
	// ErrUnsupportedClient indicates an unknown Redis client library name.
	ErrUnsupportedClient = errors.New("unsupported redis client")
	// ErrConnect indicates that the Redis server could not be reached.
	ErrConnect = errors.New("failed to connect to redis")
)

// Config defines the options that are used when connecting to the Redis
// server holding the key ring.
type Config struct {
	URL     string `env:"URL"      envDefault:"redis://localhost:6379/0"`
	Client  string `env:"CLIENT"   envDefault:"v9"`
	KeyName string `env:"KEY_NAME" envDefault:"DataProtection-Keys"`
}

// Setup connects to Redis with the configured client library, waits until
// the server answers and returns the key ring repository together with the
// connection to close on shutdown.
func Setup(ctx context.Context, cfg Config) (*keyring.Repository, io.Closer, error) {
	switch cfg.Client {
	case ClientV9, "":
		client, err := Connect(cfg.URL)
		if err != nil {
			return nil, nil, errors.Wrap(ErrConnect, err)
		}
		repo, err := redisv9.NewClientRepository(client, cfg.KeyName)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		ping := PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		if err := WaitReady(ctx, ping, MaxConnectWait); err != nil {
			client.Close()
			return nil, nil, errors.Wrap(ErrConnect, err)
		}
		return repo, client, nil
	case ClientV8:
		client, err := ConnectV8(cfg.URL)
		if err != nil {
			return nil, nil, errors.Wrap(ErrConnect, err)
		}
		repo, err := redisv8.NewClientRepository(client, cfg.KeyName)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		ping := PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		if err := WaitReady(ctx, ping, MaxConnectWait); err != nil {
			client.Close()
			return nil, nil, errors.Wrap(ErrConnect, err)
		}
		return repo, client, nil
	default:
		return nil, nil, errors.Wrap(ErrUnsupportedClient, errors.New(cfg.Client))
	}
}
