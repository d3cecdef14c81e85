// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/absmach/dataprotection/keyring"
)

var _ keyring.ListClient = (*ListStore)(nil)

// ListStore is an in-memory keyring.ListClient with Redis list semantics.
type ListStore struct {
	mu    sync.Mutex
	lists map[string][]string
}

// NewListStore returns an empty store.
func NewListStore() *ListStore {
	return &ListStore{
		lists: make(map[string][]string),
	}
}

func (s *ListStore) PushHead(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists[key] = append([]string{value}, s.lists[key]...)
	return nil
}

func (s *ListStore) Range(_ context.Context, key string, start, stop int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[key]
	n := int64(len(list))
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return []string{}, nil
	}

	res := make([]string, stop-start+1)
	copy(res, list[start:stop+1])
	return res, nil
}

// Set overwrites the element at index of the list stored at key, like LSET.
func (s *ListStore) Set(key string, index int64, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[key]
	if !ok {
		return fmt.Errorf("no such key %q", key)
	}
	if index < 0 {
		index += int64(len(list))
	}
	if index < 0 || index >= int64(len(list)) {
		return fmt.Errorf("index %d out of range", index)
	}
	list[index] = value
	return nil
}

// Values returns a copy of the raw values stored at key.
func (s *ListStore) Values(key string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string{}, s.lists[key]...)
}
