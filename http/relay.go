package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/pagecheck"
)

// Ensure Relay implements pagecheck.Fetcher at compile time.
var _ pagecheck.Fetcher = (*Relay)(nil)

// Endpoint is a CORS proxy that fetches a target URL on the caller's behalf.
// The escaped target URL is appended to Prefix. Envelope endpoints wrap the
// page in a JSON object and return it in the "contents" field; the others
// pass the page through unchanged.
type Endpoint struct {
	Prefix   string
	Envelope bool
}

// DefaultEndpoints returns the built-in proxy endpoints in priority order.
func DefaultEndpoints() []Endpoint {
	return []Endpoint{
		{Prefix: "https://api.allorigins.win/get?url=", Envelope: true},
		{Prefix: "https://cors-anywhere.herokuapp.com/"},
		{Prefix: "https://thingproxy.freeboard.io/fetch/"},
		{Prefix: "https://cors.bridged.cc/"},
		{Prefix: "https://api.codetabs.com/v1/proxy?quest="},
	}
}

// ParseEndpoint parses a proxy prefix. A "#json" suffix marks an envelope
// endpoint, e.g. "https://api.allorigins.win/get?url=#json".
func ParseEndpoint(s string) (Endpoint, error) {
	s = strings.TrimSpace(s)
	prefix, envelope := strings.CutSuffix(s, "#json")
	u, err := url.Parse(prefix)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Endpoint{}, pagecheck.Errorf(pagecheck.EINVALID, "invalid proxy endpoint %q", s)
	}
	return Endpoint{Prefix: prefix, Envelope: envelope}, nil
}

// Relay fetches pages through an ordered list of proxy endpoints.
// Endpoints are tried in order; the first 2xx response supplies the page.
// There is no retry within an endpoint and no caching across calls.
type Relay struct {
	client    *http.Client
	endpoints []Endpoint
}

// NewRelay creates a Relay over the given endpoints.
// The slice is copied; later changes by the caller have no effect.
func NewRelay(endpoints []Endpoint, opts ...Option) *Relay {
	c := newConfig(opts)
	return &Relay{
		client:    c.client,
		endpoints: append([]Endpoint(nil), endpoints...),
	}
}

// Endpoints returns a copy of the configured endpoints.
func (r *Relay) Endpoints() []Endpoint {
	return append([]Endpoint(nil), r.endpoints...)
}

// Fetch retrieves target through the first endpoint that succeeds.
// When every endpoint fails it returns an EUNAVAILABLE error wrapping the
// individual failures.
func (r *Relay) Fetch(ctx context.Context, target string) (string, error) {
	var errs []error
	for _, ep := range r.endpoints {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		html, err := r.fetchVia(ctx, ep, target)
		if err == nil {
			return html, nil
		}
		errs = append(errs, fmt.Errorf("proxy %s: %w", ep.Prefix, err))
	}

	return "", &pagecheck.Error{
		Code:    pagecheck.EUNAVAILABLE,
		Message: fmt.Sprintf("all proxies failed for %s", target),
		Err:     errors.Join(errs...),
	}
}

// envelope is the JSON wrapper returned by envelope endpoints.
type envelope struct {
	Contents *string `json:"contents"`
}

func (r *Relay) fetchVia(ctx context.Context, ep Endpoint, target string) (string, error) {
	body, err := get(ctx, r.client, ep.Prefix+escapeComponent(target))
	if err != nil {
		return "", err
	}

	if !ep.Envelope {
		return string(body), nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("decode envelope: %w", err)
	}
	if env.Contents == nil {
		return "", errors.New("envelope has no contents")
	}
	return *env.Contents, nil
}

// Close releases resources. The relay holds no resources beyond its client.
func (r *Relay) Close() error {
	return nil
}

// escapeComponent escapes s for use as a single URL component, encoding
// reserved characters such as '/', '?', '&' and spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
