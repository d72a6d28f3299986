package assert

import "github.com/oomph-ac/parkour/oerror"

// IsTrue panics with an OomphError if ok is false. It is used for contract violations that indicate a bug in a
// caller or in the physics substrate, never for conditions that can occur with valid input.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
