package errors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindReference
	KindConflict
)

// Exception is the error type every engine operation returns for expected
// failures. Count is only meaningful for conflicts caused by references.
type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int
	Count      int64
}

func (e *Exception) Error() string {
	return e.Message
}

// Is reports whether target is an Exception of the same kind, so the
// package sentinels match any exception of their kind.
func (e *Exception) Is(target error) bool {
	t, ok := target.(*Exception)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// As returns the Exception wrapped in err, if any.
func As(err error) (*Exception, bool) {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
