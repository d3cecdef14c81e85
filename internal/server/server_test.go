// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package server_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/absmach/dataprotection/internal/server"
	mglog "github.com/absmach/dataprotection/logger"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseServer(t *testing.T) {
	cases := []struct {
		desc    string
		config  server.Config
		address string
	}{
		{
			desc:    "host and port",
			config:  server.Config{Host: "localhost", Port: "9030"},
			address: "localhost:9030",
		},
		{
			desc:    "port only",
			config:  server.Config{Port: "9030"},
			address: ":9030",
		},
	}

	for _, tc := range cases {
		ctx, cancel := context.WithCancel(context.Background())
		bs := server.NewBaseServer(ctx, cancel, "keyring", tc.config, mglog.NewMock())
		assert.Equal(t, tc.address, bs.Address, fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.address, bs.Address))
		assert.Equal(t, "keyring", bs.Name, tc.desc)
		cancel()
	}
}

func TestStopSignalHandlerContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := server.StopSignalHandler(ctx, cancel, mglog.NewMock(), "keyring")
	assert.Nil(t, err, fmt.Sprintf("expected nil got %s", err))
}
