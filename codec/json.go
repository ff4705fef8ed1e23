package codec

import "encoding/json"

// JSON is a Codec that stores values as JSON documents.
type JSON struct{}

// Encode serializes value as JSON.
func (JSON) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode deserializes JSON data into dest.
func (JSON) Decode(data []byte, dest any) error {
	return json.Unmarshal(data, dest)
}
