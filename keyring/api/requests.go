// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"strings"

	"github.com/absmach/dataprotection/pkg/apiutil"
)

type appendDocumentReq struct {
	raw   string
	label string
}

func (req appendDocumentReq) validate() error {
	if strings.TrimSpace(req.raw) == "" {
		return apiutil.ErrEmptyBody
	}

	return nil
}
