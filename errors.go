package holdings

import (
	"errors"
	"fmt"
)

var (
	// ErrDataIntegrity is matched by every *DataIntegrityError.
	ErrDataIntegrity = errors.New("data integrity error")
	// ErrMalformedInput is matched by every *MalformedInputError.
	ErrMalformedInput = errors.New("malformed input")
)

// DataIntegrityError reports a snapshot whose figures cannot be normalized:
// a missing or non positive total value, or no holdings list at all.
type DataIntegrityError struct {
	Period string // "quarter1" or "quarter2"
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrDataIntegrity, e.Period, e.Reason)
}

func (e *DataIntegrityError) Is(target error) bool { return target == ErrDataIntegrity }

// MalformedInputError reports a bundle that does not have the expected shape.
// Index is the position of the offending holding, or -1 when the error is
// about the snapshot itself.
type MalformedInputError struct {
	Period string
	Index  int
	Field  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.Period == "":
		return fmt.Sprintf("%s: %s", ErrMalformedInput, e.Reason)
	case e.Index < 0:
		return fmt.Sprintf("%s: %s: %s", ErrMalformedInput, e.Period, e.Reason)
	}
	return fmt.Sprintf("%s: %s holding #%d: %q %s", ErrMalformedInput, e.Period, e.Index, e.Field, e.Reason)
}

func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }
