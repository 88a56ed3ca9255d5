package schedule

import (
	"errors"
	"fmt"
	"net"
)

var (
	ErrBadRequest         = errors.New("schedule api: bad request")
	ErrUnauthorized       = errors.New("schedule api: unauthorized")
	ErrNotFound           = errors.New("schedule api: resource not found")
	ErrNetworkUnavailable = errors.New("schedule api: network unavailable")
	ErrDecoding           = errors.New("schedule api: failed to decode response")
)

// ServerError is any 5xx answer from the upstream API.
type ServerError struct {
	Code int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("schedule api: server error (status %d)", e.Code)
}

// UnknownStatusError covers statuses outside the documented set.
type UnknownStatusError struct {
	Code int
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("schedule api: unexpected status %d", e.Code)
}

// IsConnectivity reports whether the error is a connectivity-class failure,
// as opposed to the upstream misbehaving.
func IsConnectivity(err error) bool {
	if errors.Is(err, ErrNetworkUnavailable) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
