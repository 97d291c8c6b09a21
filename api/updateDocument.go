package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/inceptionstore/service"
)

// updateDocument replaces the whole document, the id in the url wins over the
// one in the body.
func updateDocument(ctx context.Context, input *service.Document) (*service.Document, error) {

	input.Id = box.GetUrlParameter(ctx, "documentId")

	return GetServicer(ctx).UpdateDocument(GetCorrelationID(ctx), input)
}
