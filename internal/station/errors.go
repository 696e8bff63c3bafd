package station

import "fmt"

// IncompleteRowError reports a blank required numeric cell
type IncompleteRowError struct {
	Row   int
	Field string
}

func (e *IncompleteRowError) Error() string {
	return fmt.Sprintf("row %d: missing %s", e.Row, e.Field)
}

// InvalidFieldError reports a numeric cell that is unparseable, non-finite or
// negative where it must not be
type InvalidFieldError struct {
	Row    int
	Field  string
	Value  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("row %d: invalid %s %q: %s", e.Row, e.Field, e.Value, e.Reason)
}

// InvalidChainageError reports a chainage that does not parse to a
// non-negative number
type InvalidChainageError struct {
	Row   int
	Value string
	Err   error
}

func (e *InvalidChainageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("row %d: invalid chainage %q: %v", e.Row, e.Value, e.Err)
	}
	return fmt.Sprintf("row %d: invalid chainage %q", e.Row, e.Value)
}

func (e *InvalidChainageError) Unwrap() error {
	return e.Err
}

// InvalidSlopeError reports a cutting slope rejected under the strict policy
type InvalidSlopeError struct {
	Row      int
	Chainage string
	Value    string
}

func (e *InvalidSlopeError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("row %d: missing cutting slope at chainage %s", e.Row, e.Chainage)
	}
	return fmt.Sprintf("row %d: invalid cutting slope %q at chainage %s", e.Row, e.Value, e.Chainage)
}
