package azstore

import (
	"net/http"
	"strconv"
	"time"
)

// BlobProperties holds a subset of the information returned by a HEAD request
// against a blob.
type BlobProperties struct {
	// Size holds the size of the blob in bytes.
	Size int64

	// ContentType holds the content type the blob was stored with.
	ContentType string

	// ETag holds the entity tag of the blob.
	ETag string

	// LastModified holds the last modified time.Time.
	LastModified time.Time
}

// newBlobProperties derives BlobProperties from the response headers of a
// HEAD request. Unparseable values are left at their zero value.
func newBlobProperties(header http.Header) *BlobProperties {
	size, _ := strconv.ParseInt(header.Get("Content-Length"), 10, 64)
	lastModified, _ := time.Parse(http.TimeFormat, header.Get("Last-Modified"))
	return &BlobProperties{
		Size:         size,
		ContentType:  header.Get("Content-Type"),
		ETag:         header.Get("Etag"),
		LastModified: lastModified,
	}
}
