package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/inceptionstore/service"
)

func setDocument(ctx context.Context, input *service.Document) (*service.Document, error) {

	input.Id = box.GetUrlParameter(ctx, "documentId")

	return GetServicer(ctx).SetDocument(GetCorrelationID(ctx), input)
}
