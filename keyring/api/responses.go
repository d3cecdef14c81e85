// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/absmach/dataprotection"
)

var (
	_ dataprotection.Response = (*listDocumentsRes)(nil)
	_ dataprotection.Response = (*appendDocumentRes)(nil)
)

type documentRes struct {
	XML string `json:"xml"`
}

type listDocumentsRes struct {
	Total     int           `json:"total"`
	Documents []documentRes `json:"documents"`
}

func (res listDocumentsRes) Code() int {
	return http.StatusOK
}

func (res listDocumentsRes) Headers() map[string]string {
	return map[string]string{}
}

func (res listDocumentsRes) Empty() bool {
	return false
}

type appendDocumentRes struct{}

func (res appendDocumentRes) Code() int {
	return http.StatusCreated
}

func (res appendDocumentRes) Headers() map[string]string {
	return map[string]string{}
}

func (res appendDocumentRes) Empty() bool {
	return true
}
