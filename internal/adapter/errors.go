// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Transport-level failures. The two cases are deliberately distinct so the
// UI can tell "the server is not running" apart from "the refresh took too
// long".
var (
	ErrServerUnreachable = errors.New("refresh server unreachable")
	ErrTimeout           = errors.New("request timed out")
)

// RemoteError carries an error the server itself reported: a non-2xx status
// with a JSON body containing a "detail" field. Detail is surfaced to the
// user verbatim.
type RemoteError struct {
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Detail)
}

// classifyTransportError maps a resty transport error onto the adapter's
// sentinel errors, preserving the original cause in the wrap.
func classifyTransportError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrServerUnreachable, err)
}
