package gift

import (
	"bytes"
	"encoding/json"
)

// decodeStrict decodes data into v, rejecting fields v does not declare.
// Variants call it from UnmarshalJSON after seeding their wildcards.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
