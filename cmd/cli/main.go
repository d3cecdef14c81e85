// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains cli main function to run the key ring CLI.
package main

import (
	"context"
	"io"
	"log"

	"github.com/absmach/dataprotection/cli"
	redisclient "github.com/absmach/dataprotection/internal/clients/redis"
	"github.com/absmach/dataprotection/internal/env"
	"github.com/absmach/dataprotection/keyring"
	"github.com/spf13/cobra"
)

const envPrefixRedis = "MG_KEYRING_REDIS_"

func main() {
	redisConfig := redisclient.Config{}
	if err := env.ParseWithPrefix(&redisConfig, envPrefixRedis); err != nil {
		log.Fatalf("failed to load redis configuration : %s", err)
	}

	var (
		conn io.Closer
		repo keyring.XMLRepository
	)

	// Root
	rootCmd := &cobra.Command{
		Use: "keyring-cli",
	}

	// Commands that reach Redis directly
	keysCmd := cli.NewKeysCmd(func() keyring.XMLRepository {
		return repo
	})
	keysCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		r, c, err := redisclient.Setup(cmd.Context(), redisConfig)
		if err != nil {
			return err
		}
		conn, repo = c, r
		return nil
	}
	keysCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		if conn != nil {
			conn.Close()
		}
	}

	// Root Commands
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(cli.NewHealthCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	// Root Flags
	rootCmd.PersistentFlags().StringVarP(
		&redisConfig.URL,
		"redis-url",
		"u",
		redisConfig.URL,
		"Redis server URL",
	)

	rootCmd.PersistentFlags().StringVarP(
		&redisConfig.KeyName,
		"key",
		"k",
		redisConfig.KeyName,
		"Redis list holding the key ring",
	)

	rootCmd.PersistentFlags().StringVarP(
		&redisConfig.Client,
		"client",
		"c",
		redisConfig.Client,
		"Redis client library, v8 or v9",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.ServiceURL,
		"service-url",
		"s",
		cli.ServiceURL,
		"Key ring service URL used by the health command",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		cli.RawOutput,
		"Enables raw output mode for easier parsing of output",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Label,
		"label",
		"L",
		cli.Label,
		"Advisory label of appended documents",
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
