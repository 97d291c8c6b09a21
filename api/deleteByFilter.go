package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/inceptionstore/query"
)

type deleteByFilterRequest struct {
	Filter query.FilterParams `json:"filter"`
}

// deleteByFilter refuses an empty filter, use clear to remove everything.
func deleteByFilter(ctx context.Context, input *deleteByFilterRequest) error {

	if len(input.Filter) == 0 {
		return fmt.Errorf("%w 'filter': must not be empty", ErrInvalidParam)
	}

	err := GetServicer(ctx).DeleteByFilter(GetCorrelationID(ctx), input.Filter)
	if err != nil {
		return err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusNoContent)
	return nil
}
