package query

import (
	"slices"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/tidwall/gjson"

	"github.com/fulldump/inceptionstore/persistence"
)

// SortParams is a list of JSON field paths. A leading '-' sorts that field in
// descending order.
type SortParams []string

// ParseSortParams splits a comma separated list, eg: "-priority,name"
func ParseSortParams(s string) SortParams {
	params := SortParams{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" || field == "-" {
			continue
		}
		params = append(params, field)
	}
	return params
}

type sortField struct {
	path    string
	reverse bool
}

// fieldSort reads the sort fields of every record once, sorts the read values
// and puts the records back in that order.
type fieldSort[T any] struct {
	fields []sortField
}

// CompileSort returns the sorter for params, nil when params is empty.
func CompileSort[T any](params SortParams) persistence.Sorter[T] {

	if len(params) == 0 {
		return nil
	}

	fields := make([]sortField, 0, len(params))
	for _, field := range params {
		fields = append(fields, sortField{
			path:    strings.TrimPrefix(field, "-"),
			reverse: strings.HasPrefix(field, "-"),
		})
	}

	return &fieldSort[T]{fields: fields}
}

func (s *fieldSort[T]) SortStable(items []T) {

	type decorated struct {
		item   T
		values []gjson.Result
	}

	list := make([]decorated, len(items))
	for i, item := range items {
		list[i] = decorated{item: item, values: s.values(item)}
	}

	slices.SortStableFunc(list, func(a, b decorated) int {
		return s.compare(a.values, b.values)
	})

	for i := range list {
		items[i] = list[i].item
	}
}

// values returns the sort fields of item. A record that cannot be marshaled
// has every field missing.
func (s *fieldSort[T]) values(item T) []gjson.Result {

	values := make([]gjson.Result, len(s.fields))

	data, err := json.Marshal(item)
	if err != nil {
		return values
	}

	for i, field := range s.fields {
		values[i] = gjson.GetBytes(data, field.path)
	}

	return values
}

func (s *fieldSort[T]) compare(a, b []gjson.Result) int {
	for i, field := range s.fields {
		result := 0
		if a[i].Less(b[i], true) {
			result = -1
		} else if b[i].Less(a[i], true) {
			result = 1
		}
		if result == 0 {
			continue
		}
		if field.reverse {
			return -result
		}
		return result
	}
	return 0
}
