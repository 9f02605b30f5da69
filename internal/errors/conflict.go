package errors

import (
	"fmt"
	"net/http"
)

var ErrConflict = &Exception{
	Kind:       KindConflict,
	Message:    "conflict",
	StatusCode: http.StatusConflict,
}

func Conflict(format string, args ...any) *Exception {
	return &Exception{
		Kind:       KindConflict,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: http.StatusConflict,
	}
}

// InUse reports that entity id is still referenced by count records.
func InUse(entity, id string, count int64) *Exception {
	return &Exception{
		Kind:       KindConflict,
		Message:    fmt.Sprintf("%s %s is referenced by %d task(s)", entity, id, count),
		StatusCode: http.StatusConflict,
		Count:      count,
	}
}
