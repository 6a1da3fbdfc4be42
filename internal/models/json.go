package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSON stores arbitrary JSON documents in a single column.
type JSON map[string]interface{}

// Value implements the driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, &j)
}

// StringSlice stores an ordered list of strings as a JSON column. Order is
// load-bearing for risk factors, so a join table is deliberately avoided.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("unsupported scan source for StringSlice")
	}
	return json.Unmarshal(bytes, s)
}
