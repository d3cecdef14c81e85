// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package keyring stores a data-protection key ring as an ordered list of
// XML documents in a list-structured store such as Redis.
//
// Every document is pushed to the head of a single named list, so a full
// read returns the most recently appended document first. A read either
// returns every stored document or fails; a stored value that is not
// well-formed XML makes the whole read fail with ErrMalformedDocument.
package keyring
