package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// ── TEXT-backed string list ──

// StringArray stores a list of strings as comma-joined TEXT.
// Implements the GORM Scanner/Valuer interfaces.
type StringArray []string

// Scan parses comma-joined TEXT into a []string.
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("StringArray.Scan: unsupported type %T", src)
	}
	if s == "" {
		*a = StringArray{}
		return nil
	}
	parts := strings.Split(s, ",")
	arr := make(StringArray, 0, len(parts))
	for _, p := range parts {
		arr = append(arr, strings.TrimSpace(p))
	}
	*a = arr
	return nil
}

// Value serializes the list back to comma-joined TEXT.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return strings.Join(a, ","), nil
}
