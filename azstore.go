package azstore

import "net/http"

// Version is reported in the User-Agent header of every request.
const Version = "0.1.0"

// DefaultAPIVersion is the service version sent as x-ms-version on every
// request. Versions after 2014-02-14 sign an empty string for the
// Content-Length of an empty body; this client always signs "0", which is the
// contract through 2014-02-14.
const DefaultAPIVersion = "2014-02-14"

// BlobTypeBlock is the only blob type this client writes.
const BlobTypeBlock = "BlockBlob"

// Header names used on the wire.
const (
	headerAuthorization   = "Authorization"
	headerContentType     = "Content-Type"
	headerUserAgent       = "User-Agent"
	headerBlobType        = "x-ms-blob-type"
	headerClientRequestID = "x-ms-client-request-id"
	headerDate            = "x-ms-date"
	headerErrorCode       = "x-ms-error-code"
	headerVersion         = "x-ms-version"
)

// Standard query parameter values.
const (
	compList         = "list"
	restypeContainer = "container"
)

// The Transport interface executes a single HTTP request. *http.Client
// satisfies it. This interface is here so we can write mocks over the actual
// network transport.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}
