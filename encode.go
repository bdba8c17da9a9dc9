package holdings

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeBundle reads a bundle in JSON.
//
// Shape errors of the document itself are returned as *MalformedInputError.
// The bundle is not validated, Reconcile does it.
func DecodeBundle(r io.Reader) (*Bundle, error) {
	var b Bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, &MalformedInputError{Index: -1, Reason: fmt.Sprintf("invalid bundle: %v", err)}
	}
	return &b, nil
}

// EncodeBundle writes a bundle in JSON.
func EncodeBundle(w io.Writer, b *Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("could not encode bundle: %w", err)
	}
	return nil
}

// EncodeResult writes a result in JSON.
func EncodeResult(w io.Writer, r *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("could not encode result: %w", err)
	}
	return nil
}
