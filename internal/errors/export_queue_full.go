package errors

import "net/http"

var ErrExportQueueFull = &Exception{
	Message:    "export queue is full",
	StatusCode: http.StatusTooManyRequests,
}
