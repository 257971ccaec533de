package crawl

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pagecheck"
)

// FilterLinks resolves hrefs against baseURL and keeps the candidate pages.
//
// A candidate is a same-origin URL that does not end in an excluded file
// extension, carries no fragment, and has not been seen earlier in hrefs.
// Candidates keep first-discovery order. Every other href is returned in
// dropped with the reason it was filtered out, in input order.
//
// The only error is an EINVALID for a base URL that is not absolute.
func FilterLinks(baseURL string, hrefs []string) (candidates []string, dropped []pagecheck.DroppedLink, err error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, nil, err
	}
	origin := originOf(base)

	seen := make(map[string]bool)
	for _, href := range hrefs {
		cleaned := cleanHref(href)

		ref, err := url.Parse(cleaned)
		if err != nil {
			dropped = append(dropped, pagecheck.DroppedLink{Href: href, Reason: pagecheck.DropMalformed, Err: err})
			continue
		}
		resolved := normalize(base.ResolveReference(ref))
		abs := resolved.String()
		if strings.Contains(cleaned, "#") && !strings.Contains(abs, "#") {
			abs += "#"
		}

		drop := func(reason pagecheck.DropReason) {
			dropped = append(dropped, pagecheck.DroppedLink{Href: href, URL: abs, Reason: reason})
		}

		switch {
		case originOf(resolved) != origin:
			drop(pagecheck.DropCrossOrigin)
		case hasExcludedExtension(abs):
			drop(pagecheck.DropExtension)
		case strings.Contains(abs, "#"):
			drop(pagecheck.DropFragment)
		case seen[abs]:
			drop(pagecheck.DropDuplicate)
		default:
			seen[abs] = true
			candidates = append(candidates, abs)
		}
	}

	return candidates, dropped, nil
}

// SameOrigin reports whether two absolute URLs share scheme, host and port.
func SameOrigin(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return originOf(ua) == originOf(ub)
}

func parseBase(baseURL string) (*url.URL, error) {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "invalid base URL: %v", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "base URL must be absolute: %q", baseURL)
	}
	return normalize(base), nil
}

// originOf returns scheme://host:port with default ports removed.
func originOf(u *url.URL) string {
	if u.Host == "" {
		return "null"
	}
	host := strings.ToLower(u.Hostname())
	if port := u.Port(); port != "" && port != defaultPort(u.Scheme) {
		host += ":" + port
	}
	return strings.ToLower(u.Scheme) + "://" + host
}

func defaultPort(scheme string) string {
	switch strings.ToLower(scheme) {
	case "http":
		return "80"
	case "https":
		return "443"
	}
	return ""
}

// normalize lowercases the host, drops default ports and gives hierarchical
// URLs a root path, so equivalent spellings of a page compare equal.
func normalize(u *url.URL) *url.URL {
	if u.Host == "" {
		return u
	}
	n := *u
	host := strings.ToLower(n.Hostname())
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if port := n.Port(); port != "" && port != defaultPort(n.Scheme) {
		host += ":" + port
	}
	n.Host = host
	if n.Path == "" && n.Opaque == "" {
		n.Path = "/"
	}
	return &n
}

// cleanHref strips surrounding whitespace and embedded tabs and newlines,
// as browsers do before parsing a link.
func cleanHref(href string) string {
	href = strings.TrimSpace(href)
	return strings.NewReplacer("\t", "", "\n", "", "\r", "").Replace(href)
}

func hasExcludedExtension(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, ext := range pagecheck.ExcludedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
