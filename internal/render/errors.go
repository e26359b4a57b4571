package render

import (
	"errors"

	"github.com/MKhiriev/cf-cookie-client/internal/adapter"
)

// RequestError turns adapter errors into the short messages shown to the
// user. The unreachable and timeout cases stay distinct on purpose;
// server-reported errors pass through verbatim.
func RequestError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrServerUnreachable) {
		return "Cannot reach the refresh server - is it running?"
	}
	if errors.Is(err, adapter.ErrTimeout) {
		return "Request timed out - the server took too long to respond"
	}

	var remoteErr *adapter.RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Detail
	}

	return err.Error()
}
