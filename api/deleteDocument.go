package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/inceptionstore/service"
)

func deleteDocument(ctx context.Context) (*service.Document, error) {

	documentID := box.GetUrlParameter(ctx, "documentId")

	return GetServicer(ctx).DeleteDocument(GetCorrelationID(ctx), documentID)
}
