// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/absmach/dataprotection/keyring"
	"github.com/absmach/dataprotection/pkg/apiutil"
	"github.com/absmach/dataprotection/pkg/errors"
	"github.com/go-kit/kit/endpoint"
)

func listDocumentsEndpoint(repo keyring.XMLRepository) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		docs, err := repo.ReadAll(ctx)
		if err != nil {
			return nil, err
		}

		res := listDocumentsRes{
			Total:     len(docs),
			Documents: make([]documentRes, 0, len(docs)),
		}
		for _, doc := range docs {
			res.Documents = append(res.Documents, documentRes{XML: doc.String()})
		}

		return res, nil
	}
}

func appendDocumentEndpoint(repo keyring.XMLRepository) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(appendDocumentReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		doc, err := keyring.ParseDocument(req.raw)
		if err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		if err := repo.Append(ctx, doc, req.label); err != nil {
			return nil, err
		}

		return appendDocumentRes{}, nil
	}
}
