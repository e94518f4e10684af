package errors

import "net/http"

var ErrExportNotFound = &Exception{
	Message:    "export job not found",
	StatusCode: http.StatusNotFound,
}
