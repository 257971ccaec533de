package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagecheck"
	"github.com/fwojciec/pagecheck/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("collects headings and paragraphs in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<main>
	<h1>Welcome</h1>
	<p>Hello</p>
	<h2>Details</h2>
	<p>More text</p>
	<h3>Fine print</h3>
</main>
</body>
</html>`

		elements, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []pagecheck.ContentElement{
			{Tag: "h1", Text: "Welcome"},
			{Tag: "p", Text: "Hello"},
			{Tag: "h2", Text: "Details"},
			{Tag: "p", Text: "More text"},
			{Tag: "h3", Text: "Fine print"},
		}, elements)
	})

	t.Run("uses main region and ignores text outside it", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Outside</p>
<main><p>Inside</p></main>
<aside><p>Sidebar</p></aside>
</body></html>`

		elements, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []pagecheck.ContentElement{{Tag: "p", Text: "Inside"}}, elements)
	})

	t.Run("falls back to body when there is no main element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h4>Title</h4><p>Body text</p></body></html>`

		elements, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []pagecheck.ContentElement{
			{Tag: "h4", Text: "Title"},
			{Tag: "p", Text: "Body text"},
		}, elements)
	})

	t.Run("strips boilerplate before collecting text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<header><h1>Site name</h1></header>
<nav><p>Menu</p></nav>
<h1>Article</h1>
<form><p>Subscribe</p></form>
<div><nav><div><p>Nested menu</p></div></nav></div>
<p>Content</p>
<script>var p = "<p>script</p>";</script>
<style>p { color: red; }</style>
<footer><p>Copyright</p></footer>
</body></html>`

		elements, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []pagecheck.ContentElement{
			{Tag: "h1", Text: "Article"},
			{Tag: "p", Text: "Content"},
		}, elements)
	})

	t.Run("trims text and drops empty elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>   </p><h5>
			Spaced heading
		</h5><p></p><h6><span> inner </span></h6></body></html>`

		elements, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []pagecheck.ContentElement{
			{Tag: "h5", Text: "Spaced heading"},
			{Tag: "h6", Text: "inner"},
		}, elements)
	})

	t.Run("includes text of nested inline elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Click <a href="/x">here</a> to <strong>continue</strong>.</p></body></html>`

		elements, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, elements, 1)
		assert.Equal(t, "Click here to continue.", elements[0].Text)
	})

	t.Run("returns no elements for a page without content", func(t *testing.T) {
		t.Parallel()

		elements, err := goquery.NewExtractor().Extract(`<html><body><div>Just a div</div></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, elements)
	})

	t.Run("returns no elements for empty input", func(t *testing.T) {
		t.Parallel()

		elements, err := goquery.NewExtractor().Extract("")

		require.NoError(t, err)
		assert.Empty(t, elements)
	})
}
