package bootstrap

import (
	"errors"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/fulldump/inceptionstore/configuration"
	"github.com/fulldump/inceptionstore/filepersistence"
	"github.com/fulldump/inceptionstore/service"
)

func TestNewDocuments_File(t *testing.T) {

	c := configuration.Default()
	c.Dir = t.TempDir()
	c.Compress = true

	documents, closer, err := NewDocuments(&c)
	AssertNil(err)
	AssertNil(documents.Open("test"))

	d, err := documents.Create("test", &service.Document{Key: "A"})
	AssertNil(err)
	AssertNil(documents.Close("test"))
	AssertNil(closer())

	documents, _, err = NewDocuments(&c)
	AssertNil(err)
	AssertNil(documents.Open("test"))
	loaded, found := documents.GetOneById("test", d.Id)
	AssertTrue(found)
	AssertEqual(loaded.Key, "A")
}

func TestNewDocuments_Sqlite(t *testing.T) {

	c := configuration.Default()
	c.Dir = t.TempDir()
	c.Backend = configuration.BackendSqlite

	documents, closer, err := NewDocuments(&c)
	AssertNil(err)
	AssertNil(documents.Open("test"))
	_, err = documents.Create("test", &service.Document{Id: "1", Key: "A"})
	AssertNil(err)
	AssertNil(documents.Close("test"))
	AssertNil(closer())

	documents, closer, err = NewDocuments(&c)
	AssertNil(err)
	defer closer()
	AssertNil(documents.Open("test"))
	AssertEqual(documents.GetCountByFilter("test", nil), 1)
}

func TestNewDocuments_UnknownBackend(t *testing.T) {

	c := configuration.Default()
	c.Backend = "mongo"

	_, _, err := NewDocuments(&c)

	AssertNotNil(err)
	AssertFalse(errors.Is(err, filepersistence.ErrNoPath))
}
