package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PathList is an ordered list of upload-root-relative file paths. The domain
// layer works with the slice; the stored representation is a JSON array in a
// text column, converted only at the storage boundary.
type PathList []string

func (p PathList) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal([]string(p))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (p *PathList) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported PathList column type %T", value)
	}

	if len(data) == 0 {
		*p = nil
		return nil
	}
	return json.Unmarshal(data, (*[]string)(p))
}

// MarshalJSON renders a nil list as [] so API clients always see an array.
func (p PathList) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(p))
}

// Contains reports whether path is present in the list.
func (p PathList) Contains(path string) bool {
	for _, v := range p {
		if v == path {
			return true
		}
	}
	return false
}
