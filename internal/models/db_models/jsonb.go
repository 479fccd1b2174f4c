package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONMap is a jsonb object column. Stored trip documents accumulated
// several historical field layouts, so reads go through the normalize
// package instead of binding to a fixed struct.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("jsonb scan: unsupported source type")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, m)
}

// JSONList is a jsonb array of loosely shaped objects (member entries,
// legacy records).
type JSONList []map[string]interface{}

func (l JSONList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]map[string]interface{}{})
	}
	return json.Marshal(l)
}

func (l *JSONList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("jsonb scan: unsupported source type")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}
