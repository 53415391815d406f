package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the whole resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// ForwardTraceID makes every request carry the trace id found in its
// context under the given header. Requests without a trace id are sent
// unchanged.
func (c *HTTPClient) ForwardTraceID(header string) *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if traceID, ok := GetTraceIDFromContext(req.Context()); ok && req.Header.Get(header) == "" {
			req.SetHeader(header, traceID)
		}
		return nil
	})
	return c
}
