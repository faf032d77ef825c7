package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata holds informational attributes extracted at upload time.
// Only images carry dimensions; videos store an empty object.
type Metadata struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

func (m Metadata) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal Metadata: %w", err)
	}
	return b, nil
}

func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Metadata.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("unmarshal Metadata: %w", err)
	}
	return nil
}
