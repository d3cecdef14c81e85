// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/absmach/dataprotection/keyring"
	"github.com/absmach/dataprotection/pkg/errors"
)

var errNoRepository = errors.New("key ring repository is not configured")

// RepositoryProvider returns the repository key ring commands operate on.
// It is called when a command runs, after flags are parsed.
type RepositoryProvider func() keyring.XMLRepository

// StaticRepository returns a provider that always yields repo.
func StaticRepository(repo keyring.XMLRepository) RepositoryProvider {
	return func() keyring.XMLRepository {
		return repo
	}
}

func (p RepositoryProvider) repository() (keyring.XMLRepository, error) {
	if p == nil {
		return nil, errNoRepository
	}
	repo := p()
	if repo == nil {
		return nil, errNoRepository
	}
	return repo, nil
}
