package captable

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSON path expression, like "$.rounds[2].ownership.founder",
// against the JSON form of the cap table.
func (t *CapTable) Query(path string) (any, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal cap table: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("cannot unmarshal cap table: %w", err)
	}
	res, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return res, nil
}
