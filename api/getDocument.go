package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/inceptionstore/service"
)

func getDocument(ctx context.Context) (*service.Document, error) {

	documentID := box.GetUrlParameter(ctx, "documentId")

	return GetServicer(ctx).GetDocument(GetCorrelationID(ctx), documentID)
}
