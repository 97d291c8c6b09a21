package api

import (
	"github.com/fulldump/box"

	"github.com/fulldump/inceptionstore/service"
)

func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()

	b.WithInterceptors(
		correlationID,
		setVersionHeader(version),
	)

	v1 := b.Resource("/v1").
		WithInterceptors(
			injectServicer(s),
		)

	v1.Resource("/documents").
		WithActions(
			box.Get(listDocuments),
			box.Post(createDocument),
			box.Action(countDocuments).WithName("count"),
			box.Action(randomDocument).WithName("random"),
			box.ActionPost(deleteByIds).WithName("deleteByIds"),
			box.ActionPost(deleteByFilter).WithName("deleteByFilter"),
			box.ActionPost(clearDocuments).WithName("clear"),
		)

	v1.Resource("/documents/{documentId}").
		WithActions(
			box.Get(getDocument),
			box.Put(updateDocument),
			box.Patch(patchDocument),
			box.Delete(deleteDocument),
			box.ActionPost(setDocument).WithName("set"),
		)

	return b
}
