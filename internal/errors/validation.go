package errors

import (
	"fmt"
	"net/http"
)

var ErrValidation = &Exception{
	Kind:       KindValidation,
	Message:    "validation failed",
	StatusCode: http.StatusBadRequest,
}

func Validation(format string, args ...any) *Exception {
	return &Exception{
		Kind:       KindValidation,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: http.StatusBadRequest,
	}
}
