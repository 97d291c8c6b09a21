package api

import (
	"context"
	"net/http"

	"github.com/fulldump/inceptionstore/query"
	"github.com/fulldump/inceptionstore/service"
)

func randomDocument(ctx context.Context, r *http.Request) (*service.Document, error) {

	filter := query.NewFilterParamsFromValues(r.URL.Query(), "key")

	return GetServicer(ctx).GetRandomDocument(GetCorrelationID(ctx), filter)
}
