package csv_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwielgus/wordbook"
	"github.com/mwielgus/wordbook/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("fresh open writes quoted header", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		store := csv.NewStore(path)

		require.NoError(t, store.Open(true))
		require.NoError(t, store.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "\"Word\",\"Meaning\",\"Usage\"\n", string(data))
	})

	t.Run("append quotes every field unconditionally", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		store := csv.NewStore(path)
		require.NoError(t, store.Open(true))
		defer store.Close()

		require.NoError(t, store.Append(&wordbook.Entry{
			Word:    "ephemeral",
			Meaning: "adjective\tLasting briefly",
			Usage:   "Sentence one.\n\nSentence two.",
		}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.SplitN(string(data), "\n", 2)
		assert.Equal(t, `"Word","Meaning","Usage"`, lines[0])
		assert.Contains(t, lines[1], `"ephemeral","adjective`)
	})

	t.Run("round-trips embedded commas and newlines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		store := csv.NewStore(path)
		require.NoError(t, store.Open(true))

		meaning := "noun: a brief, fleeting thing\nadjective: short-lived"
		usage := "First, a sentence.\n\nSecond, another."
		require.NoError(t, store.Append(&wordbook.Entry{Word: "fugacious", Meaning: meaning, Usage: usage}))
		require.NoError(t, store.Close())

		entries, err := csv.LoadEntries(path)
		require.NoError(t, err)
		require.Contains(t, entries, "fugacious")
		assert.Equal(t, meaning, entries["fugacious"].Meaning)
		assert.Equal(t, usage, entries["fugacious"].Usage)
	})

	t.Run("append mode preserves prior rows without a second header", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		store := csv.NewStore(path)
		require.NoError(t, store.Open(true))
		require.NoError(t, store.Append(&wordbook.Entry{Word: "first"}))
		require.NoError(t, store.Close())

		store = csv.NewStore(path)
		require.NoError(t, store.Open(false))
		require.NoError(t, store.Append(&wordbook.Entry{Word: "second"}))
		require.NoError(t, store.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(data), `"Word","Meaning","Usage"`))

		entries, err := csv.LoadEntries(path)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("fresh open truncates prior content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		store := csv.NewStore(path)
		require.NoError(t, store.Open(true))
		require.NoError(t, store.Append(&wordbook.Entry{Word: "stale"}))
		require.NoError(t, store.Close())

		store = csv.NewStore(path)
		require.NoError(t, store.Open(true))
		require.NoError(t, store.Close())

		entries, err := csv.LoadEntries(path)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("rejects append before open", func(t *testing.T) {
		t.Parallel()

		store := csv.NewStore(filepath.Join(t.TempDir(), "out.csv"))

		err := store.Append(&wordbook.Entry{Word: "word"})

		assert.Equal(t, wordbook.ECONFLICT, wordbook.ErrorCode(err))
	})
}

func TestLoadEntries(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields empty map", func(t *testing.T) {
		t.Parallel()

		entries, err := csv.LoadEntries(filepath.Join(t.TempDir(), "absent.csv"))

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("tolerates short rows keyed on first field", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		content := "\"Word\",\"Meaning\",\"Usage\"\n\"lone\"\n\"pair\",\"a meaning\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		entries, err := csv.LoadEntries(path)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Empty(t, entries["lone"].Meaning)
		assert.Equal(t, "a meaning", entries["pair"].Meaning)
		assert.Empty(t, entries["pair"].Usage)
	})

	t.Run("counts an empty first field as present", func(t *testing.T) {
		// Deliberately preserved from the observed behavior: a row with an
		// empty word still registers under the empty key.
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		content := "\"Word\",\"Meaning\",\"Usage\"\n\"\",\"orphan meaning\",\"\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		entries, err := csv.LoadEntries(path)

		require.NoError(t, err)
		assert.Contains(t, entries, "")
	})

	t.Run("last row wins on duplicate words", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		content := "\"Word\",\"Meaning\",\"Usage\"\n\"w\",\"old\",\"\"\n\"w\",\"new\",\"\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		entries, err := csv.LoadEntries(path)

		require.NoError(t, err)
		assert.Equal(t, "new", entries["w"].Meaning)
	})
}
