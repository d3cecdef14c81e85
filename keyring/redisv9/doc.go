// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package redisv9 stores the key ring in Redis through the
// github.com/redis/go-redis/v9 client.
package redisv9
