package codec

import "gopkg.in/yaml.v3"

// YAML is a Codec that stores values as YAML documents.
//
// YAML has no distinct encoding for nil maps and slices: a nil container
// is marshaled as an empty one and decodes back as an allocated empty
// container. Values that must round-trip nil containers exactly should
// use JSON or Gob instead.
type YAML struct{}

// Encode serializes value as YAML.
func (YAML) Encode(value any) ([]byte, error) {
	return yaml.Marshal(value)
}

// Decode deserializes YAML data into dest.
func (YAML) Decode(data []byte, dest any) error {
	return yaml.Unmarshal(data, dest)
}
