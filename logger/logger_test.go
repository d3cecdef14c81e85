// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package logger_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	mglog "github.com/absmach/dataprotection/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logMsg struct {
	Level   string `json:"level"`
	Message string `json:"msg"`
}

func TestNew(t *testing.T) {
	cases := []struct {
		desc    string
		level   string
		logAt   string
		written bool
		err     bool
	}{
		{
			desc:    "info logger writes info",
			level:   "info",
			logAt:   "info",
			written: true,
		},
		{
			desc:    "info logger drops debug",
			level:   "info",
			logAt:   "debug",
			written: false,
		},
		{
			desc:    "error logger writes error",
			level:   "error",
			logAt:   "error",
			written: true,
		},
		{
			desc:  "invalid level",
			level: "loud",
			err:   true,
		},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		logger, err := mglog.New(&buf, tc.level)
		if tc.err {
			assert.NotNil(t, err, fmt.Sprintf("%s: expected error", tc.desc))
			continue
		}
		require.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))

		switch tc.logAt {
		case "debug":
			logger.Debug("message")
		case "info":
			logger.Info("message")
		case "error":
			logger.Error("message")
		}

		if !tc.written {
			assert.Empty(t, buf.String(), tc.desc)
			continue
		}
		var msg logMsg
		require.Nil(t, json.Unmarshal(buf.Bytes(), &msg), tc.desc)
		assert.Equal(t, "message", msg.Message, tc.desc)
	}
}
