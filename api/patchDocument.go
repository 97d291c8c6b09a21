package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/inceptionstore/service"
)

func patchDocument(ctx context.Context, input map[string]interface{}) (*service.Document, error) {

	documentID := box.GetUrlParameter(ctx, "documentId")
	delete(input, "id")

	return GetServicer(ctx).PatchDocument(GetCorrelationID(ctx), documentID, input)
}
