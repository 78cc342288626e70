package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Objection is one named customer objection with its share of mentions.
type Objection struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// ObjectionList persists a ranked objection breakdown as a JSON column.
type ObjectionList []Objection

// Value marshals the list into JSON for the database.
func (o ObjectionList) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	buf, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes the JSON column back into the list.
func (o *ObjectionList) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("objections: unsupported scan type %T", value)
	}

	var result ObjectionList
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*o = result
	return nil
}
