package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
)

func clearDocuments(ctx context.Context) error {

	err := GetServicer(ctx).Clear(GetCorrelationID(ctx))
	if err != nil {
		return err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusNoContent)
	return nil
}
