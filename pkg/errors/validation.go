package errors

import (
	"fmt"
	"strings"
)

/*
ValidationError indicates an object does not conform to the JSON-RPC 2.0
object schema. Target names the schema that rejected it ("request" or
"response"); Causes lists every individual violation.
*/
type ValidationError struct {
	Target string
	Causes []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"invalid %s object: %s",
		e.Target,
		strings.Join(e.Causes, "; "),
	)
}
