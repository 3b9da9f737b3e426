package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure reasons for calls that never produced an HTTP status.
const (
	ReasonNetwork = "network"
	ReasonTimeout = "timeout"
)

// ErrNoCredentials is returned when an operation requires a bearer token
// and the current session has none.
var ErrNoCredentials = errors.New("gateway: no credentials")

// GatewayError describes a failed upstream call. Status is zero when the
// request never reached the upstream (see Reason).
type GatewayError struct {
	Status  int
	Message string
	Reason  string
}

func (e *GatewayError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("gateway: %s failure: %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("gateway: upstream status %d: %s", e.Status, e.Message)
}

// Timeout reports whether the call failed on the fixed request deadline.
func (e *GatewayError) Timeout() bool {
	return e.Reason == ReasonTimeout
}

// Problem maps the failure onto an RFC7807 response for the dashboard banner.
func (e *GatewayError) Problem() (int, string, string, string) {
	if e.Reason != "" {
		return http.StatusBadGateway, "Upstream Unreachable", e.Message, "check your connection"
	}
	status := e.Status
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}
	return status, "Upstream Error", e.Message, ""
}
