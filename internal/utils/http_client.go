package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for talking to the cookie refresh server.
// Embedding *resty.Client exposes the full resty API; the wrapper only pins
// the headers every endpoint of the server expects.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client instance with its own
// connection pool. No global timeout is set here: each endpoint of the
// refresh server carries its own deadline, applied per request via contexts.
func NewHTTPClient() *HTTPClient {
	cli := resty.New().
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: cli}
}
