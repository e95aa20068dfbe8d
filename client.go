package azstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/c2fo/azstore/config"
	"github.com/c2fo/azstore/utils"
)

// Client issues signed requests against a single storage account. It is
// immutable after construction and safe for concurrent use: every operation
// is an isolated round trip with no shared mutable state and no retries.
type Client struct {
	credential       *SharedKeyCredential
	baseURL          *url.URL
	defaultContainer string
	transport        Transport
	uploadTransport  Transport
	apiVersion       string
	now              func() time.Time
	requestID        func() string
}

// NewClient validates settings and builds a Client. An account key that is
// not valid base64 fails here, never per request. BaseURL defaults to
// https://{account}.blob.core.windows.net.
func NewClient(settings config.Settings, opts ...ClientOption) (*Client, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	credential, err := NewSharedKeyCredential(settings.AccountName, settings.AccountKey)
	if err != nil {
		return nil, err
	}

	base := settings.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.blob.core.windows.net", settings.AccountName)
	}
	baseURL, err := url.Parse(utils.RemoveTrailingSlash(base))
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", base, err)
	}

	client := &Client{
		credential:       credential,
		baseURL:          baseURL,
		defaultContainer: settings.DefaultContainer,
		transport:        DefaultTransport(),
		uploadTransport:  UploadTransport(),
		apiVersion:       DefaultAPIVersion,
		now:              time.Now,
		requestID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt.Apply(client)
	}
	return client, nil
}

// ListContainers lists the containers of the account with a GET to
// {api_url}/?comp=list. Extra query parameters (prefix, marker, maxresults)
// merge in. A 200 yields the raw XML body; decode it with
// payload.DecodeContainerList.
func (c *Client) ListContainers(ctx context.Context, params url.Values) ([]byte, error) {
	req := newRequest(http.MethodGet, c.serviceURL(), mergeParams(url.Values{"comp": {compList}}, params))
	body, _, err := c.do(ctx, req, c.transport, http.StatusOK)
	return body, err
}

// PutBlob uploads body as a block blob with a PUT to
// {api_url}/{container}/{name}. contentType is sent as the Content-Type
// header and participates in signing. The upload transport waits indefinitely
// for the response since the service replies only after the whole body has
// been received. A 201 is the sole success status.
func (c *Client) PutBlob(ctx context.Context, container, name string, body []byte, contentType string, params url.Values) error {
	container, err := c.resolveContainer(container)
	if err != nil {
		return err
	}
	req := newRequest(http.MethodPut, c.blobURL(container, name), mergeParams(nil, params))
	req.Body = body
	req.Header.Set(headerBlobType, BlobTypeBlock)
	if contentType != "" {
		req.Header.Set(headerContentType, contentType)
	}
	_, _, err = c.do(ctx, req, c.uploadTransport, http.StatusCreated)
	return err
}

// GetBlob downloads a blob with a GET to {api_url}/{container}/{name}. A 200
// yields the blob bytes.
func (c *Client) GetBlob(ctx context.Context, container, name string, params url.Values) ([]byte, error) {
	container, err := c.resolveContainer(container)
	if err != nil {
		return nil, err
	}
	req := newRequest(http.MethodGet, c.blobURL(container, name), mergeParams(nil, params))
	body, _, err := c.do(ctx, req, c.transport, http.StatusOK)
	return body, err
}

// ListBlobs lists the blobs of a container with a GET to
// {api_url}/{container}?comp=list&restype=container. Extra query parameters
// (prefix, marker, maxresults, delimiter) merge in. A 200 yields the raw XML
// body; decode it with payload.DecodeBlobList. Pagination is caller-driven
// through the marker parameter.
func (c *Client) ListBlobs(ctx context.Context, container string, params url.Values) ([]byte, error) {
	container, err := c.resolveContainer(container)
	if err != nil {
		return nil, err
	}
	base := url.Values{"comp": {compList}, "restype": {restypeContainer}}
	req := newRequest(http.MethodGet, c.joinPath(container), mergeParams(base, params))
	body, _, err := c.do(ctx, req, c.transport, http.StatusOK)
	return body, err
}

// DeleteBlob deletes a blob. The service accepts the delete asynchronously
// with a 202.
func (c *Client) DeleteBlob(ctx context.Context, container, name string, params url.Values) error {
	container, err := c.resolveContainer(container)
	if err != nil {
		return err
	}
	req := newRequest(http.MethodDelete, c.blobURL(container, name), mergeParams(nil, params))
	_, _, err = c.do(ctx, req, c.transport, http.StatusAccepted)
	return err
}

// BlobProperties fetches the properties of a blob with a HEAD request.
func (c *Client) BlobProperties(ctx context.Context, container, name string) (*BlobProperties, error) {
	container, err := c.resolveContainer(container)
	if err != nil {
		return nil, err
	}
	req := newRequest(http.MethodHead, c.blobURL(container, name), nil)
	_, header, err := c.do(ctx, req, c.transport, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return newBlobProperties(header), nil
}

// CreateContainer creates a container with a PUT to
// {api_url}/{container}?restype=container. A 201 is the sole success status;
// an existing container answers 409 (CodeContainerAlreadyExists).
func (c *Client) CreateContainer(ctx context.Context, container string) error {
	container, err := c.resolveContainer(container)
	if err != nil {
		return err
	}
	req := newRequest(http.MethodPut, c.joinPath(container), url.Values{"restype": {restypeContainer}})
	_, _, err = c.do(ctx, req, c.transport, http.StatusCreated)
	return err
}

// DeleteContainer deletes a container and everything in it. The service
// accepts the delete asynchronously with a 202.
func (c *Client) DeleteContainer(ctx context.Context, container string) error {
	container, err := c.resolveContainer(container)
	if err != nil {
		return err
	}
	req := newRequest(http.MethodDelete, c.joinPath(container), url.Values{"restype": {restypeContainer}})
	_, _, err = c.do(ctx, req, c.transport, http.StatusAccepted)
	return err
}

// ContainerURL returns the URL for a container as a string. An empty name
// returns the account root with a trailing slash; no default-container
// substitution happens here.
func (c *Client) ContainerURL(container string) string {
	if container == "" {
		return c.baseURL.String() + "/"
	}
	return c.baseURL.String() + "/" + container
}

// BlobURL returns the URL for a blob within a container as a string, with the
// blob path escaped per segment.
func (c *Client) BlobURL(container, name string) string {
	return c.ContainerURL(container) + "/" + utils.EscapeBlobPath(name)
}

// resolveContainer applies the configured default container and validates the
// resulting name against the Azure naming rules.
func (c *Client) resolveContainer(container string) (string, error) {
	if container == "" {
		container = c.defaultContainer
	}
	if container == "" {
		return "", ErrNoContainer
	}
	if err := utils.ValidateContainerName(container); err != nil {
		return "", err
	}
	return container, nil
}

// serviceURL returns the account root with a bare "/" path.
func (c *Client) serviceURL() *url.URL {
	u := *c.baseURL
	u.Path = utils.EnsureTrailingSlash(u.Path)
	return &u
}

// blobURL joins container and the escaped blob path onto the base URL.
func (c *Client) blobURL(container, name string) *url.URL {
	return c.joinPath(container, utils.EscapeBlobPath(name))
}

// joinPath joins already-escaped segments onto the base URL. The base path is
// normalized to start with "/" first; JoinPath on an empty path would
// otherwise drop the leading slash and corrupt the canonicalized resource.
func (c *Client) joinPath(segments ...string) *url.URL {
	base := *c.baseURL
	base.Path = utils.EnsureLeadingSlash(base.Path)
	return base.JoinPath(segments...)
}

// do stamps the standard headers, signs the request, executes it on the given
// transport, and classifies the response against the single expected success
// status. The response body is always fully read and closed.
func (c *Client) do(ctx context.Context, req *Request, transport Transport, want int) ([]byte, http.Header, error) {
	c.stampStandardHeaders(req)
	c.credential.Sign(req)

	httpReq, err := req.HTTPRequest(ctx)
	if err != nil {
		return nil, nil, err
	}
	resp, err := transport.Do(httpReq)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", req.Method, httpReq.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: read response: %w", req.Method, httpReq.URL, err)
	}
	if resp.StatusCode != want {
		return nil, nil, newResponseError(req.Method, httpReq.URL.String(), resp, body)
	}
	return body, resp.Header, nil
}

// stampStandardHeaders adds the headers every request carries. x-ms-date
// participates in signing, so stamping happens before Sign.
func (c *Client) stampStandardHeaders(req *Request) {
	req.Header.Set(headerDate, c.now().UTC().Format(http.TimeFormat))
	req.Header.Set(headerVersion, c.apiVersion)
	req.Header.Set(headerClientRequestID, c.requestID())
	req.Header.Set(headerUserAgent, "azstore/"+Version)
}
