package codec

import (
	"bytes"
	"encoding/gob"
)

// Gob is a Codec that stores values in Go's gob format.
//
// Gob round-trips value graphs JSON cannot express (maps with non-string
// keys, cyclic-free pointer structures) but the encoding is Go-specific.
// Interface-typed values must be registered with gob.Register first.
type Gob struct{}

// Encode serializes value in gob format.
func (Gob) Encode(value any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes gob data into dest.
func (Gob) Decode(data []byte, dest any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(dest)
}
