package errors

import "net/http"

// HTTPStatus maps an AppError code to the status the API surfaces it with.
// Not-found, unauthorized, conflict and validation failures are deliberately
// distinct so clients can tell which part of a request was rejected.
func HTTPStatus(err *AppError) int {
	if err == nil {
		return http.StatusOK
	}

	switch err.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeConflict:
		return http.StatusConflict
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
