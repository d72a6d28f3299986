package oerror

import "fmt"

// OomphError is the error type returned by the outer surfaces of the simulation (settings, parameters and
// sessions). The movement core itself never returns errors.
type OomphError struct {
	Err string
}

// New returns a new OomphError with a message formatted from the format and args passed.
func New(format string, args ...any) *OomphError {
	if len(args) == 0 {
		return &OomphError{Err: format}
	}
	return &OomphError{Err: fmt.Sprintf(format, args...)}
}

func (e *OomphError) Error() string {
	return e.Err
}
