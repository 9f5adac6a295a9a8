package errors

import "fmt"

/*
ParseResponseError indicates the reply text was not valid JSON. The
original decoding failure is preserved as the cause and the offending
text is kept verbatim for inspection.
*/
type ParseResponseError struct {
	Raw string
	Err error
}

func (e *ParseResponseError) Error() string {
	return fmt.Sprintf("parse response: %v", e.Err)
}

// Unwrap exposes the underlying JSON decoding error.
func (e *ParseResponseError) Unwrap() error {
	return e.Err
}
