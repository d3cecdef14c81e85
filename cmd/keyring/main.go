// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains keyring main function to start the key ring service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"

	"github.com/absmach/dataprotection/internal"
	"github.com/absmach/dataprotection/internal/clients/jaeger"
	redisclient "github.com/absmach/dataprotection/internal/clients/redis"
	"github.com/absmach/dataprotection/internal/env"
	"github.com/absmach/dataprotection/internal/server"
	"github.com/absmach/dataprotection/internal/server/http"
	"github.com/absmach/dataprotection/keyring"
	"github.com/absmach/dataprotection/keyring/api"
	"github.com/absmach/dataprotection/keyring/middleware"
	mglog "github.com/absmach/dataprotection/logger"
	"github.com/absmach/dataprotection/pkg/prometheus"
	"github.com/gofrs/uuid"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "keyring"
	envPrefixRedis = "MG_KEYRING_REDIS_"
	envPrefixHTTP  = "MG_KEYRING_HTTP_"
	defSvcHTTPPort = "9030"
)

type config struct {
	LogLevel   string  `env:"MG_KEYRING_LOG_LEVEL"   envDefault:"info"`
	InstanceID string  `env:"MG_KEYRING_INSTANCE_ID" envDefault:""`
	JaegerURL  url.URL `env:"MG_JAEGER_URL"          envDefault:"http://localhost:4318/v1/traces"`
	TraceRatio float64 `env:"MG_JAEGER_TRACE_RATIO"  envDefault:"1.0"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := mglog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}
	var exitCode int
	defer mglog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
		cfg.InstanceID = id.String()
	}

	redisConfig := redisclient.Config{}
	if err := env.ParseWithPrefix(&redisConfig, envPrefixRedis); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s redis configuration : %s", svcName, err))
		exitCode = 1
		return
	}
	repo, conn, err := redisclient.Setup(ctx, redisConfig)
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	defer internal.Close(logger, conn)
	logger.Info(fmt.Sprintf("Successfully connected to redis using client %s", redisConfig.Client), slog.String("key", repo.Key()))

	tp, err := jaeger.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("error shutting down tracer provider: %v", err))
		}
	}()
	tracer := tp.Tracer(svcName)

	svc := newRepository(repo, tracer, logger)

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithPrefix(&httpServerConfig, envPrefixHTTP); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
		exitCode = 1
		return
	}

	httpSvr := http.New(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, logger, cfg.InstanceID), logger)

	g.Go(func() error {
		return httpSvr.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, httpSvr)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newRepository(repo *keyring.Repository, tracer trace.Tracer, logger *slog.Logger) keyring.XMLRepository {
	var svc keyring.XMLRepository = repo
	svc = middleware.Tracing(svc, tracer)
	svc = middleware.Logging(svc, logger.With(slog.String("key", repo.Key())))
	counter, latency := prometheus.MakeMetrics(svcName, "api")
	svc = middleware.Metrics(svc, counter, latency)

	return svc
}
