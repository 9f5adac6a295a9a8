package errors

/*
UsageError is a caller mistake detected before any I/O takes place.
*/
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

var (
	ErrAmbiguousParams = &UsageError{Reason: "params may be positional or named, not both"}
	ErrEmptyBatch      = &UsageError{Reason: "batch must contain at least one request"}
)
