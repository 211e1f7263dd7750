package engine

import "fmt"

// DataError reports a catalog rating cell that could not be read as a
// number. It aborts the whole request; there are no partial results.
type DataError struct {
	Brand string
	Model string
	Field string
	Value string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid data in phone entry %s %s: %s value %q is not numeric",
		e.Brand, e.Model, e.Field, e.Value)
}
