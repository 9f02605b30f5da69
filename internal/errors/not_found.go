package errors

import (
	"fmt"
	"net/http"
)

var ErrNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "not found",
	StatusCode: http.StatusNotFound,
}

func NotFound(entity, id string) *Exception {
	return &Exception{
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("%s %s not found", entity, id),
		StatusCode: http.StatusNotFound,
	}
}
