package service

import (
	"github.com/fulldump/inceptionstore/database"
	"github.com/fulldump/inceptionstore/persistence"
	"github.com/fulldump/inceptionstore/query"
)

const DocumentsName = "documents"

type Documents = persistence.IdentifiableMemoryPersistence[*Document, string]

type Service struct {
	db        *database.Database
	documents *Documents
}

// NewService registers documents into db, so they are opened on db.Load and
// closed on db.Stop.
func NewService(db *database.Database, documents *Documents) (*Service, error) {

	err := db.Register(DocumentsName, documents)
	if err != nil {
		return nil, err
	}

	return &Service{
		db:        db,
		documents: documents,
	}, nil
}

func (s *Service) ListDocuments(correlationID string, filter query.FilterParams, paging *persistence.PagingParams, sort query.SortParams) *persistence.DataPage[*Document] {
	return s.documents.GetPageByFilter(correlationID, composeFilter(filter), paging, query.CompileSort[*Document](sort))
}

func (s *Service) CountDocuments(correlationID string, filter query.FilterParams) int {
	return s.documents.GetCountByFilter(correlationID, composeFilter(filter))
}

func (s *Service) GetRandomDocument(correlationID string, filter query.FilterParams) (*Document, error) {
	d, found := s.documents.GetOneRandom(correlationID, composeFilter(filter))
	if !found {
		return nil, ErrorDocumentNotFound
	}
	return d, nil
}

func (s *Service) GetDocument(correlationID, id string) (*Document, error) {
	d, found := s.documents.GetOneById(correlationID, id)
	if !found {
		return nil, ErrorDocumentNotFound
	}
	return d, nil
}

func (s *Service) CreateDocument(correlationID string, d *Document) (*Document, error) {
	return s.documents.Create(correlationID, d)
}

func (s *Service) UpdateDocument(correlationID string, d *Document) (*Document, error) {
	updated, found, err := s.documents.Update(correlationID, d)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrorDocumentNotFound
	}
	return updated, nil
}

func (s *Service) SetDocument(correlationID string, d *Document) (*Document, error) {
	return s.documents.Set(correlationID, d)
}

func (s *Service) PatchDocument(correlationID, id string, data map[string]any) (*Document, error) {
	patched, found, err := s.documents.UpdatePartially(correlationID, id, data)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrorDocumentNotFound
	}
	return patched, nil
}

func (s *Service) DeleteDocument(correlationID, id string) (*Document, error) {
	deleted, found, err := s.documents.DeleteById(correlationID, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrorDocumentNotFound
	}
	return deleted, nil
}

func (s *Service) DeleteDocuments(correlationID string, ids []string) error {
	return s.documents.DeleteByIds(correlationID, ids)
}

func (s *Service) DeleteByFilter(correlationID string, filter query.FilterParams) error {
	return s.documents.DeleteByFilter(correlationID, composeFilter(filter))
}

func (s *Service) Clear(correlationID string) error {
	return s.documents.Clear(correlationID)
}
