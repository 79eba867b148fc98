package suggestions_test

import (
	"regexp"
	"sort"
	"testing"

	"github.com/jonesrussell/webnode/internal/suggestions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_CatalogParsesAndIsComplete(t *testing.T) {
	entries, err := suggestions.All()
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	urlPattern := regexp.MustCompile(`^https?://`)
	for _, entry := range entries {
		assert.NotEmpty(t, entry.Key)
		assert.NotEmpty(t, entry.Company)
		assert.NotEmpty(t, entry.Name)
		assert.NotEmpty(t, entry.Title)
		assert.Regexp(t, urlPattern, entry.URL, "entry %q", entry.Key)
	}
}

func TestAll_SortedByKey(t *testing.T) {
	entries, err := suggestions.All()
	require.NoError(t, err)

	keys := make([]string, len(entries))
	for i, entry := range entries {
		keys[i] = entry.Key
	}
	assert.True(t, sort.StringsAreSorted(keys))
}

func TestLookup_CaseInsensitive(t *testing.T) {
	for _, key := range []string{"gmail", "GMAIL", "GMail"} {
		entry, err := suggestions.Lookup(key)
		require.NoError(t, err, "key %q", key)
		assert.Equal(t, "gmail", entry.Key)
		assert.Equal(t, "Google", entry.Company)
	}
}

func TestLookup_UnknownKeyListsAvailable(t *testing.T) {
	_, err := suggestions.Lookup("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
	assert.Contains(t, err.Error(), "gmail")
}

func TestIdentity_ValidatesCleanly(t *testing.T) {
	entries, err := suggestions.All()
	require.NoError(t, err)

	for _, entry := range entries {
		assert.NoError(t, entry.Identity().Validate(), "entry %q", entry.Key)
	}
}
