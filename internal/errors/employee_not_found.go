package errors

import "net/http"

var ErrEmployeeNotFound = &Exception{
	Message:    "employee not found",
	StatusCode: http.StatusNotFound,
}
