package goquery_test

import (
	"testing"

	"github.com/mwielgus/wordbook"
	"github.com/mwielgus/wordbook/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverer_Discover(t *testing.T) {
	t.Parallel()

	t.Run("finds word page links in document order", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
<a href="/words/ephemeral.html">ephemeral</a>
<a href="/words/serendipity.html">serendipity</a>
<a href="/awad/about.html">about</a>
<a href="https://example.com/words/fake.html">external-ish absolute</a>
</body></html>`

		d := goquery.NewDiscoverer("https://wordsmith.org")
		pages, err := d.Discover(page)

		require.NoError(t, err)
		assert.Equal(t, []wordbook.WordPage{
			{Word: "ephemeral", URL: "https://wordsmith.org/words/ephemeral.html"},
			{Word: "serendipity", URL: "https://wordsmith.org/words/serendipity.html"},
		}, pages)
	})

	t.Run("keeps the last link for a duplicated word", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
<a href="/words/ephemeral.html">first</a>
<a href="/words/serendipity.html">other</a>
<a href="/words/ephemeral.html">second</a>
</body></html>`

		d := goquery.NewDiscoverer("https://wordsmith.org")
		pages, err := d.Discover(page)

		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, "ephemeral", pages[0].Word)
		assert.Equal(t, "serendipity", pages[1].Word)
	})

	t.Run("ignores links without the word path shape", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
<a href="/words/">index</a>
<a href="/words/list.txt">not html</a>
<a href="mailto:words@example.com">mail</a>
</body></html>`

		d := goquery.NewDiscoverer("https://wordsmith.org")
		pages, err := d.Discover(page)

		require.NoError(t, err)
		assert.Empty(t, pages)
	})

	t.Run("tolerates a trailing slash on the base URL", func(t *testing.T) {
		t.Parallel()

		d := goquery.NewDiscoverer("https://wordsmith.org/")
		pages, err := d.Discover(`<a href="/words/halcyon.html">halcyon</a>`)

		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "https://wordsmith.org/words/halcyon.html", pages[0].URL)
	})
}
