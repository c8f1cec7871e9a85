// Package netx holds small URL helpers shared by the transport and the views.
package netx

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrInvalidBaseURL = errors.New("invalid base URL")

// LastPathSegment returns everything after the final "/" of the location's
// path, unescaped. The split happens on the escaped path, so an encoded
// slash stays inside the segment. Query and fragment are ignored, and a
// trailing slash yields "".
func LastPathSegment(location string) string {
	p := location
	if u, err := url.Parse(location); err == nil {
		p = u.EscapedPath()
	} else if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}

	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}
	if seg, err := url.PathUnescape(p); err == nil {
		return seg
	}
	return p
}

// JoinURL appends path to an absolute http(s) base URL with exactly one slash
// between them.
func JoinURL(base, path string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, base)
	}

	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/"), nil
}
