// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"errors"
	"fmt"
	"testing"

	redisclient "github.com/absmach/dataprotection/internal/clients/redis"
	"github.com/absmach/dataprotection/internal/server"
	"github.com/stretchr/testify/assert"
)

func TestParseServerConfig(t *testing.T) {
	tests := []struct {
		description    string
		config         *server.Config
		expectedConfig *server.Config
		options        []Options
		err            error
	}{
		{
			"Parsing with Server Config",
			&server.Config{},
			&server.Config{
				Host:     "localhost",
				Port:     "8080",
				CertFile: "cert",
				KeyFile:  "key",
			},
			[]Options{
				{
					Environment: map[string]string{
						"HOST":        "localhost",
						"PORT":        "8080",
						"SERVER_CERT": "cert",
						"SERVER_KEY":  "key",
					},
				},
			},
			nil,
		},
		{
			"Parsing with Server Config with Prefix",
			&server.Config{},
			&server.Config{
				Host:     "localhost",
				Port:     "9030",
				CertFile: "cert",
				KeyFile:  "key",
			},
			[]Options{
				{
					Environment: map[string]string{
						"MG_KEYRING_HTTP_HOST":        "localhost",
						"MG_KEYRING_HTTP_PORT":        "9030",
						"MG_KEYRING_HTTP_SERVER_CERT": "cert",
						"MG_KEYRING_HTTP_SERVER_KEY":  "key",
					},
					Prefix: "MG_KEYRING_HTTP_",
				},
			},
			nil,
		},
	}
	for _, test := range tests {
		err := Parse(test.config, test.options...)
		switch test.err {
		case nil:
			assert.NoError(t, err, fmt.Sprintf("%s: expected no error but got %v", test.description, err))
		default:
			assert.Error(t, err, fmt.Sprintf("%s: expected error but got nil", test.description))
		}
		assert.Equal(t, test.expectedConfig, test.config, fmt.Sprintf("%s: expected %v got %v", test.description, test.expectedConfig, test.config))
	}
}

func TestParseRedisConfig(t *testing.T) {
	tests := []struct {
		description    string
		config         *redisclient.Config
		expectedConfig *redisclient.Config
		options        []Options
		err            error
	}{
		{
			"defaults",
			&redisclient.Config{},
			&redisclient.Config{URL: "redis://localhost:6379/0", Client: "v9", KeyName: "DataProtection-Keys"},
			[]Options{{Environment: map[string]string{}}},
			nil,
		},
		{
			"overrides with prefix",
			&redisclient.Config{},
			&redisclient.Config{URL: "redis://redis:6379/8", Client: "v8", KeyName: "Keys"},
			[]Options{
				{
					Environment: map[string]string{
						"MG_KEYRING_REDIS_KEY_NAME": "Keys",
						"MG_KEYRING_REDIS_URL":      "redis://redis:6379/8",
						"MG_KEYRING_REDIS_CLIENT":   "v8",
					},
					Prefix: "MG_KEYRING_REDIS_",
				},
			},
			nil,
		},
	}

	for _, test := range tests {
		err := Parse(test.config, test.options...)
		switch test.err {
		case nil:
			assert.NoError(t, err, fmt.Sprintf("%s: expected no error but got %v", test.description, err))
		default:
			assert.Error(t, err, fmt.Sprintf("%s: expected error but got nil", test.description))
		}
		assert.Equal(t, test.expectedConfig, test.config, fmt.Sprintf("%s: expected %v got %v", test.description, test.expectedConfig, test.config))
	}
}

func TestParseCustomConfig(t *testing.T) {
	type CustomConfig struct {
		Field1 string `env:"FIELD1" envDefault:"val1"`
		Field2 int    `env:"FIELD2"`
	}

	tests := []struct {
		description    string
		config         *CustomConfig
		expectedConfig *CustomConfig
		options        []Options
		err            error
	}{
		{
			"parse with missing required field",
			&CustomConfig{},
			&CustomConfig{Field1: "test val"},
			[]Options{
				{
					Environment: map[string]string{
						"FIELD1": "test val",
					},
					RequiredIfNoDef: true,
				},
			},
			errors.New(`required environment variable "FIELD2" not set`),
		},
		{
			"parse with prefix",
			&CustomConfig{},
			&CustomConfig{Field1: "test val", Field2: 2},
			[]Options{
				{
					Environment: map[string]string{
						"MG-FIELD1": "test val",
						"MG-FIELD2": "2",
					},
					Prefix: "MG-",
				},
			},
			nil,
		},
	}

	for _, test := range tests {
		err := Parse(test.config, test.options...)
		switch test.err {
		case nil:
			assert.NoError(t, err, fmt.Sprintf("expected no error but got %v", err))
		default:
			assert.Error(t, err, "expected error but got nil")
		}
		assert.Equal(t, test.expectedConfig, test.config, fmt.Sprintf("expected %v got %v", test.expectedConfig, test.config))
	}
}
