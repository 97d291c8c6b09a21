package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/inceptionstore/service"
)

func createDocument(ctx context.Context, input *service.Document) (*service.Document, error) {

	d, err := GetServicer(ctx).CreateDocument(GetCorrelationID(ctx), input)
	if err != nil {
		return nil, err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusCreated)
	return d, nil
}
