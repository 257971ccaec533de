// Package languagetool implements pagecheck.GrammarService against the
// LanguageTool HTTP API.
package languagetool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf16"

	"github.com/fwojciec/pagecheck"
	"github.com/go-resty/resty/v2"
)

// Defaults for the public LanguageTool service.
const (
	DefaultEndpoint = "https://api.languagetool.org/v2/check"
	DefaultTimeout  = 30 * time.Second
)

// Ensure Client implements pagecheck.GrammarService at compile time.
var _ pagecheck.GrammarService = (*Client)(nil)

// Client submits text to a LanguageTool check endpoint.
type Client struct {
	resty    *resty.Client
	endpoint string
	username string
	apiKey   string
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets the check endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.resty.SetTimeout(d)
	}
}

// WithCredentials sets the username and API key sent with every request.
// Both are required by premium LanguageTool accounts.
func WithCredentials(username, apiKey string) Option {
	return func(c *Client) {
		c.username = username
		c.apiKey = apiKey
	}
}

// NewClient creates a Client for the public LanguageTool endpoint.
func NewClient(opts ...Option) *Client {
	c := &Client{
		resty: resty.New().
			SetTimeout(DefaultTimeout).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", "pagecheck"),
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type checkResponse struct {
	Matches []match `json:"matches"`
}

type match struct {
	Message      string        `json:"message"`
	Replacements []replacement `json:"replacements"`
	Context      matchContext  `json:"context"`
	Rule         rule          `json:"rule"`
}

type replacement struct {
	Value string `json:"value"`
}

type matchContext struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

type rule struct {
	ID string `json:"id"`
}

// Check submits text in language and returns the service's matches in order.
func (c *Client) Check(ctx context.Context, text string, language string) ([]pagecheck.TypoMatch, error) {
	if language == "" {
		language = pagecheck.DefaultLanguage
	}

	form := map[string]string{
		"text":     text,
		"language": language,
	}
	if c.username != "" && c.apiKey != "" {
		form["username"] = c.username
		form["apiKey"] = c.apiKey
	}

	resp, err := c.resty.R().
		SetContext(ctx).
		SetFormData(form).
		Post(c.endpoint)
	if err != nil {
		return nil, &pagecheck.Error{Code: pagecheck.EUNAVAILABLE, Message: "grammar service request failed", Err: err}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, pagecheck.Errorf(pagecheck.EUNAVAILABLE, "grammar service returned HTTP %d", resp.StatusCode())
	}

	var body checkResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode grammar response: %w", err)
	}

	matches := make([]pagecheck.TypoMatch, 0, len(body.Matches))
	for _, m := range body.Matches {
		suggestions := make([]string, 0, len(m.Replacements))
		for _, r := range m.Replacements {
			suggestions = append(suggestions, r.Value)
		}
		matches = append(matches, pagecheck.TypoMatch{
			Word:        sliceUTF16(m.Context.Text, m.Context.Offset, m.Context.Length),
			Suggestions: suggestions,
			Message:     m.Message,
			RuleID:      m.Rule.ID,
		})
	}
	return matches, nil
}

// sliceUTF16 returns length UTF-16 code units of s starting at offset,
// clamped to the bounds of s.
func sliceUTF16(s string, offset, length int) string {
	units := utf16.Encode([]rune(s))
	start := min(max(offset, 0), len(units))
	end := min(start+max(length, 0), len(units))
	return string(utf16.Decode(units[start:end]))
}
