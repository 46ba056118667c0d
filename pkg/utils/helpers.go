package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// unmarshal a byte array on top of a copy of base, so that fields absent from the data keep
// their base values; unknown fields and trailing data are rejected
func FromDataToSpec[T any](byteValue []byte, base T) (*T, error) {
	d := base
	dec := json.NewDecoder(bytes.NewReader(byteValue))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding %T: %w", d, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("decoding %T: unexpected data after the first JSON value", d)
	}
	return &d, nil
}
