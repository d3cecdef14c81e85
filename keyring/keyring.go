// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package keyring

import "context"

// DefaultKeyName is the conventional list key used by the convenience
// constructors of the Redis adapters. Repository never assumes it.
const DefaultKeyName = "DataProtection-Keys"

// XMLRepository specifies the key ring persistence API consumed by the
// key management subsystem.
type XMLRepository interface {
	// ReadAll retrieves every stored document in store order, most recently
	// appended first. An absent list yields an empty result.
	ReadAll(ctx context.Context) ([]Document, error)

	// Append stores the document at the head of the list. The label is
	// advisory and is not persisted.
	Append(ctx context.Context, doc Document, label string) error
}

// ListClient is the capability set a store client must provide.
type ListClient interface {
	// PushHead inserts value at the head of the list stored at key,
	// creating the list when it does not exist.
	PushHead(ctx context.Context, key, value string) error

	// Range returns the elements of the list stored at key between start
	// and stop, both inclusive. Negative indexes count from the tail, so
	// Range(ctx, key, 0, -1) returns the entire list.
	Range(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// ClientFactory returns a store client. It is called once per operation and
// its result is never cached, so the caller owns the connection lifecycle.
type ClientFactory func(ctx context.Context) (ListClient, error)

// StaticFactory returns a ClientFactory that always yields client.
func StaticFactory(client ListClient) ClientFactory {
	return func(context.Context) (ListClient, error) {
		return client, nil
	}
}
