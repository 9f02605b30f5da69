package errors

import "net/http"

var ErrOptimisticLock = &Exception{
	Kind:       KindConflict,
	Message:    "record was modified concurrently",
	StatusCode: http.StatusConflict,
}
