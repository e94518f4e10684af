package errors

import "net/http"

var ErrExportPathRequired = &Exception{
	Message:    "export path is required",
	StatusCode: http.StatusBadRequest,
}
