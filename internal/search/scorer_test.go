package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statement-viewer/backend/internal/index"
	"github.com/statement-viewer/backend/internal/search"
)

func entry(page int, name string) index.Entry {
	return index.Entry{
		PageNumber: page,
		NameRaw:    name,
		NumberKey:  index.NumberKey(name),
		TokensKey:  index.TokensKey(name),
	}
}

func TestNewQuery(t *testing.T) {
	q := search.NewQuery("  hill creek 10-28  ")
	assert.Equal(t, "HILL CREEK 10-28", q.Normalized)
	assert.Equal(t, "HILLCREEK", q.TokensKey)
	assert.Equal(t, "10-28", q.NumberKey)

	q = search.NewQuery("10-28")
	assert.Equal(t, "", q.TokensKey)
}

func TestScoreExactNumberKeyWins(t *testing.T) {
	q := search.NewQuery("10-28")

	exact := entry(1, "Hill Creek Unit 10-28F")
	near := entry(2, "Hill Creek Unit 10-29F")

	// Identical entries apart from the number key: the exact key must
	// score strictly better.
	assert.Less(t, search.Score(q, exact), search.Score(q, near))
	assert.Equal(t, -1000, search.Score(q, exact))
}

func TestScorePairDistance(t *testing.T) {
	q := search.NewQuery("10-28")

	// Component-wise distance: |10-10| + |28-29| = 1.
	assert.Equal(t, 1, search.Score(q, entry(1, "Unit 10-29")))
	// |10-12| + |28-20| = 10.
	assert.Equal(t, 10, search.Score(q, entry(1, "Unit 12-20")))
}

func TestScoreNumberFormatMismatch(t *testing.T) {
	q := search.NewQuery("10-28")

	// Entry key is single-number form while the query's is a pair.
	assert.Equal(t, 50, search.Score(q, entry(1, "Unit 7")))
}

func TestScoreMissingNumberKey(t *testing.T) {
	q := search.NewQuery("10-28")

	assert.Equal(t, 200, search.Score(q, entry(1, "Plainview Station")))
}

func TestScoreTokenContainment(t *testing.T) {
	q := search.NewQuery("hill creek")

	// Entry tokens contain the query tokens.
	assert.Equal(t, -300, search.Score(q, entry(1, "Hill Creek Unit")))
	// Query tokens contain the entry tokens.
	assert.Equal(t, -150, search.Score(q, entry(1, "Hill")))
}

func TestScoreTokenPrefixRun(t *testing.T) {
	q := search.NewQuery("hillcrest")

	// No containment either way; common prefix "HILLCRE" is 7 long:
	// (20 - 7) + 50 = 63.
	assert.Equal(t, 63, search.Score(q, entry(1, "Hillcreek")))
}

func TestScoreNumericQueryIgnoresTokens(t *testing.T) {
	// A digits-only query skips the token term entirely.
	q := search.NewQuery("5-12")
	withTokens := entry(1, "Some Station 5-12")
	assert.Equal(t, -1000, search.Score(q, withTokens))
}

func TestRankKeepsFavorableCandidates(t *testing.T) {
	entries := []index.Entry{
		entry(1, "Hill Creek Unit 10-28F"),
		entry(2, "Hill Creek Unit 10-29F"),
	}

	ranked := search.Rank(search.NewQuery("10-28"), entries, 20)

	// Only the exact match scores favorably; the near miss is not a
	// candidate.
	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].PageNumber)
}

func TestRankFallsBackToLeastBad(t *testing.T) {
	entries := []index.Entry{
		entry(1, "Alpha Station"),
		entry(2, "Beta Station"),
	}

	// Nothing scores favorably; the least-bad ranked entries still
	// come back rather than an empty list.
	ranked := search.Rank(search.NewQuery("99-99"), entries, 20)
	require.Len(t, ranked, 2)
	assert.Equal(t, 1, ranked[0].PageNumber)
}

func TestRankStableOnEqualScores(t *testing.T) {
	entries := []index.Entry{
		entry(3, "Well A 5-12"),
		entry(7, "Well A 5-12"),
		entry(9, "Well A 5-12"),
	}

	ranked := search.Rank(search.NewQuery("5-12"), entries, 20)

	require.Len(t, ranked, 3)
	assert.Equal(t, []int{3, 7, 9}, []int{ranked[0].PageNumber, ranked[1].PageNumber, ranked[2].PageNumber})
}

func TestRankLimit(t *testing.T) {
	var entries []index.Entry
	for page := 1; page <= 25; page++ {
		entries = append(entries, entry(page, "Shared Well 5-12"))
	}

	ranked := search.Rank(search.NewQuery("5-12"), entries, 20)
	assert.Len(t, ranked, 20)
	assert.Equal(t, 1, ranked[0].PageNumber)
}
