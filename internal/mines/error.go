package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidParams = errors.New("invalid game params")

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

// panics [AssertionError]
func must(cond bool, format string, args ...any) {
	if !cond {
		panic(AssertionError{fmt.Sprintf(format, args...)})
	}
}
