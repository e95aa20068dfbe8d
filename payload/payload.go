// Package payload decodes the XML documents returned by the listing
// operations. The client hands back raw body bytes; decoding is the caller's
// choice, which keeps the core a pure request/response pipe.
package payload

import (
	"encoding/xml"
	"fmt"
	"io"
)

// ContainerList is the EnumerationResults document returned by listing the
// containers of an account. NextMarker, when non-empty, is passed back as the
// marker query parameter to fetch the next page.
type ContainerList struct {
	XMLName    xml.Name    `xml:"EnumerationResults"`
	Prefix     string      `xml:"Prefix"`
	Marker     string      `xml:"Marker"`
	NextMarker string      `xml:"NextMarker"`
	MaxResults int64       `xml:"MaxResults"`
	Containers []Container `xml:"Containers>Container"`
}

// Container is an entry in a ContainerList.
type Container struct {
	Name       string              `xml:"Name"`
	Properties ContainerProperties `xml:"Properties"`
}

// ContainerProperties contains various properties of a container returned
// from various endpoints like ListContainers.
type ContainerProperties struct {
	LastModified string `xml:"Last-Modified"`
	Etag         string `xml:"Etag"`
	LeaseStatus  string `xml:"LeaseStatus"`
}

// BlobList is the EnumerationResults document returned by listing the blobs
// of a container.
type BlobList struct {
	XMLName    xml.Name `xml:"EnumerationResults"`
	Prefix     string   `xml:"Prefix"`
	Marker     string   `xml:"Marker"`
	NextMarker string   `xml:"NextMarker"`
	MaxResults int64    `xml:"MaxResults"`
	Blobs      []Blob   `xml:"Blobs>Blob"`
}

// Blob is an entry in a BlobList.
type Blob struct {
	Name       string         `xml:"Name"`
	Properties BlobProperties `xml:"Properties"`
}

// BlobProperties contains various properties of a blob returned in list
// responses.
type BlobProperties struct {
	LastModified    string `xml:"Last-Modified"`
	Etag            string `xml:"Etag"`
	ContentLength   int64  `xml:"Content-Length"`
	ContentType     string `xml:"Content-Type"`
	ContentEncoding string `xml:"Content-Encoding"`
	BlobType        string `xml:"BlobType"`
}

// DecodeContainerList decodes the body of a ListContainers response.
func DecodeContainerList(r io.Reader) (*ContainerList, error) {
	var list ContainerList
	if err := xml.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode container list: %w", err)
	}
	return &list, nil
}

// DecodeBlobList decodes the body of a ListBlobs response.
func DecodeBlobList(r io.Reader) (*BlobList, error) {
	var list BlobList
	if err := xml.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode blob list: %w", err)
	}
	return &list, nil
}
