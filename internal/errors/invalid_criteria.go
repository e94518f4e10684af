package errors

import "net/http"

var ErrInvalidCriteria = &Exception{
	Message:    "invalid filter or sort value",
	StatusCode: http.StatusBadRequest,
}
