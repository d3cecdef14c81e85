// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package keyring

import (
	"context"
	"fmt"

	"github.com/absmach/dataprotection/pkg/errors"
)

var _ XMLRepository = (*Repository)(nil)

// Repository is an XMLRepository over any ListClient. It holds no state
// besides the factory and the key name, and is safe for concurrent use.
type Repository struct {
	factory ClientFactory
	key     string
}

// NewRepository returns a repository storing documents in the list named key.
func NewRepository(factory ClientFactory, key string) (*Repository, error) {
	if factory == nil {
		return nil, ErrMissingFactory
	}
	if key == "" {
		return nil, ErrMissingKeyName
	}

	return &Repository{
		factory: factory,
		key:     key,
	}, nil
}

// Key returns the name of the list holding the key ring.
func (repo *Repository) Key() string {
	return repo.key
}

func (repo *Repository) ReadAll(ctx context.Context) ([]Document, error) {
	client, err := repo.client(ctx)
	if err != nil {
		return nil, err
	}

	vals, err := client.Range(ctx, repo.key, 0, -1)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(vals))
	for i, val := range vals {
		doc, err := ParseDocument(val)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedDocument, fmt.Errorf("list %q index %d: %w", repo.key, i, err))
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (repo *Repository) Append(ctx context.Context, doc Document, _ string) error {
	if doc.IsZero() {
		return ErrEmptyDocument
	}

	client, err := repo.client(ctx)
	if err != nil {
		return err
	}

	return client.PushHead(ctx, repo.key, doc.String())
}

func (repo *Repository) client(ctx context.Context) (ListClient, error) {
	client, err := repo.factory(ctx)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrMissingClient
	}

	return client, nil
}
