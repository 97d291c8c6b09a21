package service

import (
	"testing"

	. "github.com/fulldump/biff"

	"github.com/fulldump/inceptionstore/query"
)

var (
	documentA = &Document{Id: "1", Key: "A", Content: "x"}
	documentB = &Document{Id: "2", Key: "B", Content: "y"}
)

func TestComposeFilter_Empty(t *testing.T) {
	AssertNil(composeFilter(nil))
	AssertNil(composeFilter(query.FilterParams{}))
}

func TestComposeFilter_Key(t *testing.T) {
	f := composeFilter(query.FilterParams{"key": "A"})
	AssertTrue(f(documentA))
	AssertFalse(f(documentB))
}

func TestComposeFilter_KeyAndContent(t *testing.T) {
	f := composeFilter(query.FilterParams{"key": "B", "content": "y"})
	AssertFalse(f(documentA))
	AssertTrue(f(documentB))
}

func TestComposeFilter_OtherFields(t *testing.T) {
	f := composeFilter(query.FilterParams{"content": "x"})
	AssertTrue(f(documentA))
	AssertFalse(f(documentB))
}
