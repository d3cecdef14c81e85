// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package internal_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/absmach/dataprotection/internal"
	"github.com/stretchr/testify/assert"
)

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestClose(t *testing.T) {
	cases := []struct {
		desc   string
		err    error
		logged bool
	}{
		{
			desc: "close successfully",
		},
		{
			desc:   "close with failure",
			err:    errors.New("connection reset"),
			logged: true,
		},
	}

	for _, tc := range cases {
		buf := &bytes.Buffer{}
		c := &closer{err: tc.err}
		internal.Close(slog.New(slog.NewTextHandler(buf, nil)), c)
		assert.True(t, c.closed, tc.desc)
		assert.Equal(t, tc.logged, buf.Len() > 0, tc.desc)
		if tc.logged {
			assert.Contains(t, buf.String(), tc.err.Error(), tc.desc)
		}
	}
}
