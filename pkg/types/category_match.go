package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// CategoryMatch is the set of catalog category ids a reseller tier applies to.
// Legacy admin rows stored either a single id ("cat1") or an id array
// (["cat1","cat2"]); Scan accepts both shapes and normalizes to a deduplicated
// set so tier matching is always one membership test.
type CategoryMatch []string

// NewCategoryMatch builds a normalized match set from raw ids.
func NewCategoryMatch(ids ...string) CategoryMatch {
	return normalizeCategoryIDs(ids)
}

// Contains reports whether the category id is in the match set.
func (m CategoryMatch) Contains(categoryID string) bool {
	for _, id := range m {
		if id == categoryID {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer, always writing the array shape.
func (m CategoryMatch) Value() (driver.Value, error) {
	normalized := normalizeCategoryIDs(m)
	raw, err := json.Marshal([]string(normalized))
	if err != nil {
		return nil, fmt.Errorf("category match: marshal: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner for the JSONB category match column.
func (m *CategoryMatch) Scan(value any) error {
	if value == nil {
		*m = CategoryMatch{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("category match: unsupported scan type %T", value)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return fmt.Errorf("category match: unmarshal: %w", err)
		}
		ids = []string{single}
	}

	*m = normalizeCategoryIDs(ids)
	return nil
}

func normalizeCategoryIDs(ids []string) CategoryMatch {
	seen := make(map[string]struct{}, len(ids))
	out := make(CategoryMatch, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
