// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package http_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/absmach/dataprotection/internal/server"
	httpserver "github.com/absmach/dataprotection/internal/server/http"
	"github.com/absmach/dataprotection/logger"
	"github.com/stretchr/testify/assert"
)

func TestStartStopsOnContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := server.Config{Host: "127.0.0.1", Port: "0"}
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httpserver.New(ctx, cancel, "keyring", cfg, handler, logger.NewMock())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.Nil(t, err, "unexpected error stopping server")
	case <-time.After(server.StopWaitTime + time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestStartFailsOnInvalidCertificate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := server.Config{Host: "127.0.0.1", Port: "0", CertFile: "missing.crt", KeyFile: "missing.key"}
	srv := httpserver.New(ctx, cancel, "keyring", cfg, http.NotFoundHandler(), logger.NewMock())

	err := srv.Start()
	assert.NotNil(t, err, "expected error for missing certificate files")
}
