package azstore

import "time"

// ClientOption can be used to alter the behavior of NewClient.
type ClientOption interface {
	// Apply applies the option to the client.
	Apply(*Client)

	// OptionName returns the name of the option.
	OptionName() string
}

// WithTransport returns a ClientOption that sets the Transport for every
// operation, uploads included. Combine with WithUploadTransport to split the
// two again; order matters.
func WithTransport(transport Transport) ClientOption {
	return &transportOption{transport: transport}
}

type transportOption struct {
	transport Transport
}

func (o *transportOption) Apply(c *Client) {
	c.transport = o.transport
	c.uploadTransport = o.transport
}

func (o *transportOption) OptionName() string {
	return "transport"
}

// WithUploadTransport returns a ClientOption that sets the Transport used for
// uploads only.
func WithUploadTransport(transport Transport) ClientOption {
	return &uploadTransportOption{transport: transport}
}

type uploadTransportOption struct {
	transport Transport
}

func (o *uploadTransportOption) Apply(c *Client) {
	c.uploadTransport = o.transport
}

func (o *uploadTransportOption) OptionName() string {
	return "uploadTransport"
}

// WithAPIVersion returns a ClientOption that overrides the x-ms-version sent
// with every request. Versions after 2014-02-14 change the signing convention
// for the Content-Length of empty bodies; this client keeps signing "0", so
// only move forward if you know what you are doing.
func WithAPIVersion(version string) ClientOption {
	return &apiVersionOption{version: version}
}

type apiVersionOption struct {
	version string
}

func (o *apiVersionOption) Apply(c *Client) {
	c.apiVersion = o.version
}

func (o *apiVersionOption) OptionName() string {
	return "apiVersion"
}

// WithClock returns a ClientOption that overrides the clock used to stamp
// x-ms-date, for instance to freeze time in tests.
func WithClock(now func() time.Time) ClientOption {
	return &clockOption{now: now}
}

type clockOption struct {
	now func() time.Time
}

func (o *clockOption) Apply(c *Client) {
	c.now = o.now
}

func (o *clockOption) OptionName() string {
	return "clock"
}

// WithRequestIDSource returns a ClientOption that overrides how
// x-ms-client-request-id values are generated. The default is a fresh UUID
// per request.
func WithRequestIDSource(source func() string) ClientOption {
	return &requestIDOption{source: source}
}

type requestIDOption struct {
	source func() string
}

func (o *requestIDOption) Apply(c *Client) {
	c.requestID = o.source
}

func (o *requestIDOption) OptionName() string {
	return "requestIDSource"
}
