package csv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwielgus/wordbook"
	"github.com/mwielgus/wordbook/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordList(t *testing.T) {
	t.Parallel()

	t.Run("write then read round-trips sorted", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "words.csv")
		err := csv.WriteWordList(path, []wordbook.WordPage{
			{Word: "zugzwang", URL: "https://wordsmith.org/words/zugzwang.html"},
			{Word: "apricity", URL: "https://wordsmith.org/words/apricity.html"},
		})
		require.NoError(t, err)

		pages, err := csv.ReadWordList(path)
		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, "apricity", pages[0].Word)
		assert.Equal(t, "https://wordsmith.org/words/apricity.html", pages[0].URL)
		assert.Equal(t, "zugzwang", pages[1].Word)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := csv.ReadWordList(filepath.Join(t.TempDir(), "missing.csv"))
		require.Error(t, err)
		assert.Equal(t, wordbook.ENOTFOUND, wordbook.ErrorCode(err))
	})

	t.Run("duplicate words keep the last URL", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "words.csv")
		err := csv.WriteWordList(path, []wordbook.WordPage{
			{Word: "apricity", URL: "https://example.com/old.html"},
			{Word: "apricity", URL: "https://example.com/new.html"},
		})
		require.NoError(t, err)

		pages, err := csv.ReadWordList(path)
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "https://example.com/new.html", pages[0].URL)
	})

	t.Run("short rows are skipped", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "words.csv")
		data := "Word,URL\napricity,https://example.com/a.html\nstray\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		pages, err := csv.ReadWordList(path)
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "apricity", pages[0].Word)
	})

	t.Run("merge concatenates existing and discovered", func(t *testing.T) {
		t.Parallel()

		merged := csv.MergeWordLists(
			[]wordbook.WordPage{{Word: "a", URL: "u1"}},
			[]wordbook.WordPage{{Word: "b", URL: "u2"}},
		)
		assert.Len(t, merged, 2)
	})

	t.Run("merge prefers newly discovered URLs on rewrite", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "words.csv")
		existing := []wordbook.WordPage{{Word: "w", URL: "https://old"}}
		discovered := []wordbook.WordPage{{Word: "w", URL: "https://new"}}

		require.NoError(t, csv.WriteWordList(path, csv.MergeWordLists(existing, discovered)))
		got, err := csv.ReadWordList(path)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "https://new", got[0].URL)
	})
}
