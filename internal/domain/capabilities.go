package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Capabilities is the set of capabilities a user holds, persisted as a
// comma-separated text column.
type Capabilities []Capability

// Scan implements sql.Scanner.
func (c *Capabilities) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*c = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("capabilities: cannot scan %T", src)
	}
	if raw == "" {
		*c = nil
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make(Capabilities, 0, len(parts))
	for _, p := range parts {
		out = append(out, Capability(strings.TrimSpace(p)))
	}
	*c = out
	return nil
}

// Value implements driver.Valuer.
func (c Capabilities) Value() (driver.Value, error) {
	parts := make([]string, len(c))
	for i, capability := range c {
		parts[i] = string(capability)
	}
	return strings.Join(parts, ","), nil
}
