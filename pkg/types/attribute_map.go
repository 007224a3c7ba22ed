package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AttributeMap stores a variant's display attributes (e.g. "Size" -> "M") as JSONB.
type AttributeMap map[string]string

// Clone returns an independent copy so callers can mutate safely.
func (a AttributeMap) Clone() AttributeMap {
	if a == nil {
		return nil
	}
	out := make(AttributeMap, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// Value implements driver.Valuer.
func (a AttributeMap) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("attribute map: marshal: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (a *AttributeMap) Scan(value any) error {
	if value == nil {
		*a = AttributeMap{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("attribute map: unsupported scan type %T", value)
	}

	decoded := AttributeMap{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("attribute map: unmarshal: %w", err)
	}
	*a = decoded
	return nil
}
