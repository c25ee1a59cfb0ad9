package chat

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

var (
	ErrEmptyInput        = errors.New("input is empty")
	ErrMalformedResponse = errors.New("completion response has no choices[0].message")
)

// UpstreamError is any failure talking to the completion endpoint. StatusCode is zero
// when no HTTP response was received.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream completion failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream completion failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the call ran out of time
func (e *UpstreamError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

func newUpstreamError(err error) *UpstreamError {
	upstreamErr := &UpstreamError{Err: err}

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		upstreamErr.StatusCode = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		upstreamErr.StatusCode = reqErr.HTTPStatusCode
	}

	return upstreamErr
}

// HTTPStatus maps the failure onto a gateway status for the caller
func (e *UpstreamError) HTTPStatus() int {
	if e.Timeout() {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}
