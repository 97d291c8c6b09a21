package service

import (
	"errors"

	"github.com/fulldump/inceptionstore/persistence"
	"github.com/fulldump/inceptionstore/query"
)

var ErrorDocumentNotFound = errors.New("document not found")

type Servicer interface {
	ListDocuments(correlationID string, filter query.FilterParams, paging *persistence.PagingParams, sort query.SortParams) *persistence.DataPage[*Document]
	CountDocuments(correlationID string, filter query.FilterParams) int
	GetRandomDocument(correlationID string, filter query.FilterParams) (*Document, error)
	GetDocument(correlationID, id string) (*Document, error)
	CreateDocument(correlationID string, d *Document) (*Document, error)
	UpdateDocument(correlationID string, d *Document) (*Document, error)
	SetDocument(correlationID string, d *Document) (*Document, error)
	PatchDocument(correlationID, id string, data map[string]any) (*Document, error)
	DeleteDocument(correlationID, id string) (*Document, error)
	DeleteDocuments(correlationID string, ids []string) error
	DeleteByFilter(correlationID string, filter query.FilterParams) error
	Clear(correlationID string) error
}
