package models

import "fmt"

// ParsedConverter is satisfied by *T when T can be built from a parsed
// record. Transaction is the built-in implementation; callers plug in their
// own types the same way.
type ParsedConverter[T any] interface {
	*T
	FromParsed(ParsedTransaction) error
}

// ConvertAll converts parsed records in order and stops at the first error.
// Nothing is returned on failure.
func ConvertAll[T any, PT ParsedConverter[T]](parsed []ParsedTransaction) ([]T, error) {
	out := make([]T, 0, len(parsed))
	for i, p := range parsed {
		var v T
		if err := PT(&v).FromParsed(p); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}
