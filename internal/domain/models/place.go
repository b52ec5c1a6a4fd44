// internal/domain/models/place.go
package models

import (
	"encoding/json"
	"errors"
)

// ErrPlaceNameMissing is returned when a reference-data element has no
// string "name" field.
var ErrPlaceNameMissing = errors.New(`place has no string "name" field`)

// Place is one element of a reference dataset (a district or an upazila).
//
// Only Name is interpreted. Raw keeps the element exactly as it was read so
// every other field is returned to clients untouched.
type Place struct {
	Name string
	Raw  json.RawMessage
}

// UnmarshalJSON captures the raw element and extracts its name.
func (p *Place) UnmarshalJSON(b []byte) error {
	var head struct {
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	if head.Name == nil {
		return ErrPlaceNameMissing
	}
	p.Name = *head.Name
	p.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// MarshalJSON writes the element back as it was read.
func (p Place) MarshalJSON() ([]byte, error) {
	if len(p.Raw) == 0 {
		return json.Marshal(map[string]string{"name": p.Name})
	}
	return p.Raw, nil
}
