package query

import (
	"net/url"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/inceptionstore/persistence"
	"github.com/fulldump/inceptionstore/utils"
)

// FilterParams is a mongo style filter document evaluated against the JSON
// form of a record, eg: {"key": "A", "count": {"$gt": 3}}
type FilterParams map[string]any

// NewFilterParamsFromValues builds an equality filter with the given keys of v.
// Keys not present in v are ignored.
func NewFilterParamsFromValues(v url.Values, keys ...string) FilterParams {
	params := FilterParams{}
	for _, key := range keys {
		if !v.Has(key) {
			continue
		}
		params[key] = v.Get(key)
	}
	return params
}

// CompileFilter returns the predicate for params, nil when params is empty.
// Records that cannot be represented as a JSON object never match, neither do
// records evaluated with an unknown operator.
func CompileFilter[T any](params FilterParams) persistence.Filter[T] {

	if len(params) == 0 {
		return nil
	}

	conditions := map[string]any(params)

	return func(item T) bool {
		data, err := utils.RemarshalMap(item)
		if err != nil {
			return false
		}
		match, err := connor.Match(conditions, data)
		if err != nil {
			return false
		}
		return match
	}
}
