package contract

import (
	"net/url"
	"strings"
)

// ExtractDomain reduces a URL to its host name, used as the source identifier
// for vocabulary entries. The leading "www." label is dropped. An empty
// string means no usable domain could be derived.
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := parsed.Hostname()
	if host == "" {
		return ""
	}
	return strings.TrimPrefix(host, "www.")
}
