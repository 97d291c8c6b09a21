package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fulldump/inceptionstore/persistence"
	"github.com/fulldump/inceptionstore/query"
	"github.com/fulldump/inceptionstore/service"
)

func listDocuments(ctx context.Context, r *http.Request) (*persistence.DataPage[*service.Document], error) {

	q := r.URL.Query()

	paging, err := pagingFromQuery(q.Get("skip"), q.Get("take"), q.Get("total"))
	if err != nil {
		return nil, err
	}

	filter := query.NewFilterParamsFromValues(q, "key")
	sort := query.ParseSortParams(q.Get("sort"))

	return GetServicer(ctx).ListDocuments(GetCorrelationID(ctx), filter, paging, sort), nil
}

func pagingFromQuery(skip, take, total string) (*persistence.PagingParams, error) {

	paging := &persistence.PagingParams{}

	if skip != "" {
		v, err := strconv.ParseInt(skip, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w 'skip': %w", ErrInvalidParam, err)
		}
		paging.Skip = &v
	}

	if take != "" {
		v, err := strconv.ParseInt(take, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w 'take': %w", ErrInvalidParam, err)
		}
		paging.Take = &v
	}

	if total != "" {
		v, err := strconv.ParseBool(total)
		if err != nil {
			return nil, fmt.Errorf("%w 'total': %w", ErrInvalidParam, err)
		}
		paging.Total = v
	}

	return paging, nil
}
