package errors

import (
	"fmt"
	"net/http"
)

var ErrReference = &Exception{
	Kind:       KindReference,
	Message:    "dangling reference",
	StatusCode: http.StatusUnprocessableEntity,
}

// Reference reports a foreign key on a new record that points nowhere.
func Reference(entity, id string) *Exception {
	return &Exception{
		Kind:       KindReference,
		Message:    fmt.Sprintf("referenced %s %s does not exist", entity, id),
		StatusCode: http.StatusUnprocessableEntity,
	}
}
