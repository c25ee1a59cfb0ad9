package httpext

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

// HandlerFunc is an http handler that hands unrecovered failures back to the caller
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// StatusCoder lets an error choose the status written by Handle
type StatusCoder interface {
	HTTPStatus() int
}

// Handle adapts h to http.Handler. Errors returned by h are logged and written as a JSON
// error; h must not have written a response before returning one.
func Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var coder StatusCoder
		if errors.As(err, &coder) {
			code = coder.HTTPStatus()
			message = http.StatusText(code)
		}

		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", code).
			Msg("Unhandled request error")

		JsonError(w, message, code)
	})
}
