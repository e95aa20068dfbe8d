package azstore

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"sync"
)

// RecordedRequest is a snapshot of one request seen by a MockTransport.
type RecordedRequest struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// MockTransport is a scripted Transport implementation for consumer tests. It
// records every request it sees and answers each one with the configured
// response or error. Safe for concurrent use.
type MockTransport struct {
	// StatusCode to answer with; 0 defaults to 200 OK
	StatusCode int

	// Header of the scripted response
	Header http.Header

	// Body of the scripted response
	Body []byte

	// Err, if set, is returned instead of a response
	Err error

	mu       sync.Mutex
	requests []RecordedRequest
}

// Do records req and returns the scripted response.
func (m *MockTransport) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		_ = req.Body.Close()
	}
	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Method: req.Method,
		URL:    req.URL,
		Header: req.Header.Clone(),
		Body:   body,
	})
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	status := m.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	header := m.Header
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(m.Body)),
		Request:    req,
	}, nil
}

// Requests returns a copy of the requests recorded so far.
func (m *MockTransport) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RecordedRequest(nil), m.requests...)
}
