package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_NewestFirst(t *testing.T) {
	listings := []Listing{
		{ID: "old", Created: "2024-01-01T00:00:00Z"},
		{ID: "new", Created: "2024-06-01T00:00:00Z"},
		{ID: "mid", Created: "2024-03-01T00:00:00Z"},
	}

	ranked := Rank(listings)

	assert.Equal(t, []string{"new", "mid", "old"}, ids(ranked))
	// Input order untouched.
	assert.Equal(t, []string{"old", "new", "mid"}, ids(listings))
}

func TestRank_MissingTimestampsSortOldest(t *testing.T) {
	listings := []Listing{
		{ID: "undated"},
		{ID: "dated", Created: "2020-01-01T00:00:00Z"},
		{ID: "garbage", Created: "last Tuesday"},
	}

	ranked := Rank(listings)

	assert.Equal(t, []string{"dated", "undated", "garbage"}, ids(ranked))
}

func TestRank_StableForEqualTimestamps(t *testing.T) {
	listings := []Listing{
		{ID: "a", Created: "2024-01-01T00:00:00Z"},
		{ID: "b", Created: "2024-01-01T00:00:00Z"},
		{ID: "c", Created: "2024-01-01T00:00:00Z"},
		{ID: "d"},
		{ID: "e"},
	}

	ranked := Rank(listings)

	// Equal timestamps (and equally-undated listings) keep input order.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(ranked))
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
	assert.Empty(t, Rank([]Listing{}))
}

func TestDisplayHelpers(t *testing.T) {
	dated := Listing{ContractType: "permanent", Created: "2024-02-15T10:00:00Z"}
	assert.Equal(t, "permanent", dated.DisplayContractType())
	assert.Equal(t, "February 15, 2024", dated.DisplayCreated())

	blank := Listing{}
	assert.Equal(t, "N/A", blank.DisplayContractType())
	assert.Equal(t, "No Date Available", blank.DisplayCreated())
}

func ids(listings []Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}
