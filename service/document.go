package service

import (
	"github.com/fulldump/inceptionstore/persistence"
	"github.com/fulldump/inceptionstore/query"
)

type Document struct {
	Id      string `json:"id"`
	Key     string `json:"key"`
	Content string `json:"content"`
}

func (d *Document) GetId() string {
	return d.Id
}

func (d *Document) SetId(id string) {
	d.Id = id
}

// composeFilter matches "key" directly on the field, any other parameter is
// evaluated as a query filter over the JSON form.
func composeFilter(params query.FilterParams) persistence.Filter[*Document] {

	rest := query.FilterParams{}
	key, hasKey := "", false
	for k, v := range params {
		if s, ok := v.(string); ok && k == "key" {
			key, hasKey = s, true
			continue
		}
		rest[k] = v
	}

	other := query.CompileFilter[*Document](rest)

	if !hasKey && other == nil {
		return nil
	}

	return func(d *Document) bool {
		if hasKey && d.Key != key {
			return false
		}
		if other != nil && !other(d) {
			return false
		}
		return true
	}
}
