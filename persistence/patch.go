package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/tidwall/sjson"

	"github.com/fulldump/inceptionstore/utils"
)

// ErrInvalidPatch is returned when the patch data does not fit the record.
var ErrInvalidPatch = errors.New("invalid patch")

var pathEscaper = strings.NewReplacer(`\`, `\\`, `.`, `\.`, `*`, `\*`, `?`, `\?`, `|`, `\|`, `#`, `\#`, `@`, `\@`)

// applyPatch returns a patched copy of item. item is never written, so a
// failed patch leaves it as it was and readers holding it see no change.
func applyPatch[T any](item T, data map[string]any) (T, error) {

	var zero T

	payload, err := json.Marshal(item)
	if err != nil {
		return zero, fmt.Errorf("marshal item: %w", err)
	}

	if _, ok := any(item).(Patcher); ok {
		var clone T
		err := json.Unmarshal(payload, &clone)
		if err != nil {
			return zero, fmt.Errorf("copy item: %w", err)
		}
		patcher := any(clone).(Patcher)
		for _, field := range utils.GetKeys(data) {
			err := patcher.ApplyPatch(field, data[field])
			if err != nil {
				return zero, fmt.Errorf("%w: field '%s': %w", ErrInvalidPatch, field, err)
			}
		}
		return clone, nil
	}

	for _, field := range utils.GetKeys(data) {
		payload, err = sjson.SetBytes(payload, pathEscaper.Replace(field), data[field])
		if err != nil {
			return zero, fmt.Errorf("%w: field '%s': %w", ErrInvalidPatch, field, err)
		}
	}

	var result T
	err = json.Unmarshal(payload, &result)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	return result, nil
}
