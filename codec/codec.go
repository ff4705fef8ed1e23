// Package codec defines the serialization interface consumed by ticktock
// and provides JSON, gob, and YAML implementations.
//
// A Codec converts the values a client stores into the byte records the
// backing store persists and back. Encode and Decode must round-trip any
// value the client stores, including nested containers, up to the
// limitations of the format (YAML, for instance, normalizes nil maps and
// slices to empty ones). Decode follows the destination-pointer convention
// of encoding/json, so shelves are read with
//
//	var v MyType
//	err := shelf.Get("key", &v)
//
// JSON is the default codec and the right choice for interoperable data.
// Gob handles arbitrary Go value graphs, including types JSON cannot
// express, at the cost of a Go-only format. YAML is useful when the backing
// files double as human-editable configuration.
package codec

// Codec converts values to byte records and back.
type Codec interface {
	// Encode serializes value into a byte record.
	Encode(value any) ([]byte, error)

	// Decode deserializes data into the value pointed to by dest.
	Decode(data []byte, dest any) error
}
