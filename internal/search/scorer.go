package search

import (
	"sort"
	"strings"

	"github.com/statement-viewer/backend/internal/index"
)

// DefaultMaxMatches caps the candidate match list kept per query.
const DefaultMaxMatches = 20

// Score weights. Lower scores rank better.
const (
	exactNumberBoost      = -1000
	missingNumberPenalty  = 200
	numberFormatPenalty   = 50
	containsQueryBoost    = -300
	containedInQueryBoost = -150
	maxPrefixCredit       = 20
	prefixBasePenalty     = 50
)

// Query is a search query with its derived comparison keys, computed
// once per ranking pass.
type Query struct {
	Normalized string
	TokensKey  string
	NumberKey  string
}

// NewQuery normalizes rawQuery and derives its comparison keys. The
// token key is the letters of the normalized query, with no word
// dropping: "10-28" yields an empty token key, "hill creek" yields
// "HILLCREEK".
func NewQuery(rawQuery string) Query {
	norm := index.NormalizeWords(rawQuery)
	return Query{
		Normalized: norm,
		TokensKey:  index.LettersOnly(norm),
		NumberKey:  index.NumberKey(norm),
	}
}

// Score ranks entry against the query; lower is better and values may
// be negative. An exact number-key match dominates everything else.
func Score(q Query, e index.Entry) int {
	score := 0

	if q.NumberKey != "" {
		switch {
		case e.NumberKey == q.NumberKey:
			score += exactNumberBoost
		case e.NumberKey == "":
			score += missingNumberPenalty
		default:
			qa, qb, qok := index.SplitNumberKey(q.NumberKey)
			ea, eb, eok := index.SplitNumberKey(e.NumberKey)
			if qok && eok {
				score += abs(qa-ea) + abs(qb-eb)
			} else {
				score += numberFormatPenalty
			}
		}
	}

	if q.TokensKey != "" {
		switch {
		case strings.Contains(e.TokensKey, q.TokensKey):
			score += containsQueryBoost
		case strings.Contains(q.TokensKey, e.TokensKey):
			score += containedInQueryBoost
		default:
			run := commonPrefixLen(e.TokensKey, q.TokensKey)
			if run > maxPrefixCredit {
				run = maxPrefixCredit
			}
			score += (maxPrefixCredit - run) + prefixBasePenalty
		}
	}

	return score
}

// Rank scores every entry against the query and returns at most limit
// best candidates. The sort is stable: equal scores keep insertion
// order. Entries scoring favorably (negative) form the candidate list;
// when none do, the least-bad entries are returned instead, so a
// non-empty index always yields candidates.
func Rank(q Query, entries []index.Entry, limit int) []index.Entry {
	if limit <= 0 {
		limit = DefaultMaxMatches
	}

	type scored struct {
		entry index.Entry
		score int
	}
	ranked := make([]scored, len(entries))
	for i, e := range entries {
		ranked[i] = scored{entry: e, score: Score(q, e)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})

	if len(ranked) > 0 && ranked[0].score < 0 {
		cut := len(ranked)
		for i, s := range ranked {
			if s.score >= 0 {
				cut = i
				break
			}
		}
		ranked = ranked[:cut]
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]index.Entry, len(ranked))
	for i, s := range ranked {
		out[i] = s.entry
	}
	return out
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
