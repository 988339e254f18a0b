package api

import (
	"encoding/json/v2"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// OptionalInt is an integer body field that distinguishes three states:
// absent (Set false), explicit null (Set true, Value nil), and a value
// (Set true, Value non-nil). Plain pointers cannot tell absent from null,
// which matters for clearing a book's rating.
type OptionalInt struct {
	Value *int
	Set   bool
}

// UnmarshalJSON records that the field was present in the request body.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cannot unmarshal %s into integer", string(data))
	}
	o.Value = &n
	return nil
}

// MarshalJSON emits the value or null.
func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Schema implements huma.SchemaProvider so the field is documented as a
// nullable integer rather than an object.
func (o OptionalInt) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:     huma.TypeInteger,
		Nullable: true,
	}
}
