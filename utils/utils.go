// Package utils provides the path and naming helpers shared by the client.
package utils

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

const (
	// ErrBadContainerName constant is returned when a container name violates the Azure naming rules
	ErrBadContainerName = "container name is invalid - must be 3-63 lowercase letters, numbers, and dashes, " +
		"must start and end with a letter or number, and may not contain consecutive dashes"
)

// regex to test whether the last character is a '/'
var hasTrailingSlash = regexp.MustCompile("/$")

// regex to test whether the first character is a '/'
var hasLeadingSlash = regexp.MustCompile("^/")

// container names per the Azure rules; consecutive dashes are checked separately
var validContainerName = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,61}[a-z0-9]$`)

// RemoveTrailingSlash removes trailing slash, if any
func RemoveTrailingSlash(path string) string {
	return strings.TrimRight(path, "/")
}

// RemoveLeadingSlash removes leading slash, if any
func RemoveLeadingSlash(path string) string {
	return strings.TrimLeft(path, "/")
}

// EnsureTrailingSlash adds a trailing slash if the path doesn't already have one.
func EnsureTrailingSlash(dir string) string {
	if hasTrailingSlash.MatchString(dir) {
		return dir
	}
	return dir + "/"
}

// EnsureLeadingSlash is like EnsureTrailingSlash except that it adds the leading slash if needed.
func EnsureLeadingSlash(dir string) string {
	if hasLeadingSlash.MatchString(dir) {
		return dir
	}
	return "/" + dir
}

// ValidateContainerName ensures a container name follows the Azure naming
// rules: 3-63 characters of lowercase letters, numbers, and dashes, starting
// and ending with a letter or number, with no consecutive dashes.
func ValidateContainerName(name string) error {
	if !validContainerName.MatchString(name) || strings.Contains(name, "--") {
		return errors.New(ErrBadContainerName)
	}
	return nil
}

// EscapeBlobPath escapes each segment of a blob path, preserving the virtual
// directory separators. Can't use url.PathEscape on the whole path since that
// would escape the separators too.
func EscapeBlobPath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
