package azstore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
)

// Request describes one Azure Blob Storage call before it is signed and handed
// to a Transport. Params stay decoded until the request is materialized so
// that canonicalization sees the original values; URL carries the
// already-escaped path and no query string.
type Request struct {
	Method string
	URL    *url.URL
	Header http.Header
	Params url.Values
	Body   []byte
}

// newRequest builds a descriptor. Building cannot fail given well-formed
// inputs; name validation and path escaping happen in the Client before this
// point.
func newRequest(method string, u *url.URL, params url.Values) *Request {
	return &Request{
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Params: params,
	}
}

// HTTPRequest materializes the descriptor into an *http.Request bound to ctx,
// encoding the query parameters and setting the content length from the body.
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	u := *r.URL
	u.RawQuery = r.Params.Encode()

	var body io.Reader
	if len(r.Body) > 0 {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u.String(), body)
	if err != nil {
		return nil, err
	}
	for name, values := range r.Header {
		req.Header[name] = append([]string(nil), values...)
	}
	req.ContentLength = int64(len(r.Body))
	return req, nil
}

// mergeParams folds extra caller-supplied query parameters into base. base may
// be nil; the result is never nil.
func mergeParams(base, extra url.Values) url.Values {
	if base == nil {
		base = url.Values{}
	}
	for name, values := range extra {
		for _, v := range values {
			base.Add(name, v)
		}
	}
	return base
}
