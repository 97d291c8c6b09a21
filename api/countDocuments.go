package api

import (
	"context"
	"net/http"

	"github.com/fulldump/inceptionstore/query"
)

type countResponse struct {
	Count int `json:"count"`
}

func countDocuments(ctx context.Context, r *http.Request) (*countResponse, error) {

	filter := query.NewFilterParamsFromValues(r.URL.Query(), "key")

	return &countResponse{
		Count: GetServicer(ctx).CountDocuments(GetCorrelationID(ctx), filter),
	}, nil
}
