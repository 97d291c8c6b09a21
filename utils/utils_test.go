package utils

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestGetKeys(t *testing.T) {
	keys := GetKeys(map[string]int{"b": 2, "a": 1, "c": 3})
	AssertEqual(keys, []string{"a", "b", "c"})
}

func TestRemarshalMap(t *testing.T) {

	type item struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	m, err := RemarshalMap(&item{Name: "n", Count: 2})

	AssertNil(err)
	AssertEqual(m["name"], "n")
	AssertEqual(m["count"], float64(2))
}
