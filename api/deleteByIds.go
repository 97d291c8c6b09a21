package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
)

type deleteByIdsRequest struct {
	Ids []string `json:"ids"`
}

func deleteByIds(ctx context.Context, input *deleteByIdsRequest) error {

	err := GetServicer(ctx).DeleteDocuments(GetCorrelationID(ctx), input.Ids)
	if err != nil {
		return err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusNoContent)
	return nil
}
