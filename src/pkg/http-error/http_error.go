package httpError

import "net/http"

// HttpError is the error usecases hand to utils.ResponseError. Code is the
// HTTP status written to the client.
type HttpError struct {
	Code    int
	Message string
}

func (e *HttpError) Error() string {
	return e.Message
}

func newHttpError(code int) *HttpError {
	return &HttpError{Code: code, Message: http.StatusText(code)}
}

func NewBadRequest() *HttpError {
	return newHttpError(http.StatusBadRequest)
}

func NewUnauthorized() *HttpError {
	return newHttpError(http.StatusUnauthorized)
}

func NewNotFound() *HttpError {
	return newHttpError(http.StatusNotFound)
}

func NewConflict() *HttpError {
	return newHttpError(http.StatusConflict)
}

func NewTooManyRequests() *HttpError {
	return newHttpError(http.StatusTooManyRequests)
}

func NewInternalServerError() *HttpError {
	return newHttpError(http.StatusInternalServerError)
}
