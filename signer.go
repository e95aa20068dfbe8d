package azstore

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// contentHeaders are the fixed headers that participate in the string-to-sign,
// in the order the service expects them. An absent header contributes an empty
// string; Content-Length is special-cased in stringToSign.
var contentHeaders = []string{
	"Content-Encoding",
	"Content-Language",
	"Content-Length",
	"Content-MD5",
	"Content-Type",
	"Date",
	"If-Modified-Since",
	"If-Match",
	"If-None-Match",
	"If-Unmodified-Since",
	"Range",
}

// Sign computes the SharedKey signature for req and attaches it as
// "Authorization: SharedKey {account}:{signature}". Signing is a pure function
// of the credential and the request descriptor: no clock, no network, no
// global state, and it cannot fail (key validity is enforced at credential
// construction).
func (c *SharedKeyCredential) Sign(req *Request) {
	mac := hmac.New(sha256.New, c.accountKey)
	mac.Write([]byte(c.stringToSign(req)))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	req.Header.Set(headerAuthorization, fmt.Sprintf("SharedKey %s:%s", c.accountName, signature))
}

// stringToSign builds the canonical string: the verb, the fixed content
// headers, the canonicalized x-ms-* headers, and the canonicalized resource,
// joined by single newlines with no trailing newline.
func (c *SharedKeyCredential) stringToSign(req *Request) string {
	parts := make([]string, 0, len(contentHeaders)+3)
	parts = append(parts, req.Method)
	for _, name := range contentHeaders {
		// Content-Length is derived from the body, not the headers: "0" for
		// an empty or absent body, the numeric length otherwise.
		if name == "Content-Length" {
			parts = append(parts, strconv.Itoa(len(req.Body)))
			continue
		}
		parts = append(parts, strings.TrimSpace(req.Header.Get(name)))
	}
	if canonical := canonicalizedHeaders(req.Header); canonical != "" {
		parts = append(parts, canonical)
	}
	parts = append(parts, c.canonicalizedResource(req))
	return strings.Join(parts, "\n")
}

// canonicalizedHeaders renders every x-ms-* header as a "name:value" line:
// names lower-cased and sorted lexicographically, repeated values comma-joined
// in insertion order, each value trimmed of surrounding whitespace only.
func canonicalizedHeaders(header http.Header) string {
	var names []string
	for name := range header {
		if lower := strings.ToLower(name); strings.HasPrefix(lower, "x-ms-") {
			names = append(names, lower)
		}
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		values := header.Values(name)
		trimmed := make([]string, len(values))
		for i, v := range values {
			trimmed[i] = strings.TrimSpace(v)
		}
		lines = append(lines, name+":"+strings.Join(trimmed, ","))
	}
	return strings.Join(lines, "\n")
}

// canonicalizedResource is "/{account}{escaped path}" followed, for each query
// parameter name in sorted order, by a newline and "{name}:{sorted values
// comma-joined}". Parameter names are lower-cased and values stay decoded.
func (c *SharedKeyCredential) canonicalizedResource(req *Request) string {
	var sb strings.Builder
	sb.WriteString("/")
	sb.WriteString(c.accountName)
	sb.WriteString(req.URL.EscapedPath())

	params := make(map[string][]string, len(req.Params))
	for name, values := range req.Params {
		lower := strings.ToLower(name)
		params[lower] = append(params[lower], values...)
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		values := params[name]
		sort.Strings(values)
		sb.WriteString("\n")
		sb.WriteString(name)
		sb.WriteString(":")
		sb.WriteString(strings.Join(values, ","))
	}
	return sb.String()
}
