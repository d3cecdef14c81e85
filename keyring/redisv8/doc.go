// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package redisv8 stores the key ring in Redis through the
// github.com/go-redis/redis/v8 client.
package redisv8
