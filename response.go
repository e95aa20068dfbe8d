package azstore

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
)

// Code is a service error code carried in the body (or the x-ms-error-code
// header) of a failed response.
type Code string

// Common service error codes.
const (
	CodeAuthenticationFailed       Code = "AuthenticationFailed"
	CodeBlobNotFound               Code = "BlobNotFound"
	CodeContainerAlreadyExists     Code = "ContainerAlreadyExists"
	CodeContainerNotFound          Code = "ContainerNotFound"
	CodeInvalidQueryParameterValue Code = "InvalidQueryParameterValue"
	CodeResourceNotFound           Code = "ResourceNotFound"
)

// ResponseError is returned when the service answers with any status other
// than the single success status expected for the operation. It carries the
// full response so the caller decides remediation; there is no retry in the
// client.
type ResponseError struct {
	// Method and URL identify the attempted request
	Method string
	URL    string

	// StatusCode, Header, and Body are the full service response
	StatusCode int
	Header     http.Header
	Body       []byte

	// Code and Message are decoded from the Azure error document when present
	Code    Code
	Message string
}

// Error returns a string representation of the error
func (e *ResponseError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// serviceError is the XML error document the service returns on failure.
type serviceError struct {
	XMLName xml.Name `xml:"Error"`
	Code    string   `xml:"Code"`
	Message string   `xml:"Message"`
}

// newResponseError classifies a non-success response, opportunistically
// decoding the error document for its code and message. Responses without a
// decodable body still carry the x-ms-error-code header when the service set
// one.
func newResponseError(method, rawURL string, resp *http.Response, body []byte) *ResponseError {
	re := &ResponseError{
		Method:     method,
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		Code:       Code(resp.Header.Get(headerErrorCode)),
	}
	var se serviceError
	if err := xml.Unmarshal(body, &se); err == nil {
		if se.Code != "" {
			re.Code = Code(se.Code)
		}
		re.Message = se.Message
	}
	return re
}

// HasCode reports whether err is (or wraps) a *ResponseError carrying one of
// the given service codes.
func HasCode(err error, codes ...Code) bool {
	var re *ResponseError
	if !errors.As(err, &re) {
		return false
	}
	for _, code := range codes {
		if re.Code == code {
			return true
		}
	}
	return false
}
