package search

import (
	"strings"

	"github.com/statement-viewer/backend/internal/index"
)

// Match is a resolved search target: the page to show plus the cursor
// position for a "match X of Y" indicator.
type Match struct {
	PageNumber int
	Entry      index.Entry
	MatchIndex int
	MatchCount int
}

// Session holds the cycling state across repeated identical queries.
// Resubmitting the same normalized query advances through the
// candidate list instead of re-ranking; a new query re-ranks from
// scratch. One session and one cursor per loaded document.
type Session struct {
	maxMatches int

	hasSig      bool
	lastSig     string
	lastMatches []index.Entry
	lastIdx     int
}

// NewSession creates an idle session keeping at most maxMatches
// candidates per query. maxMatches <= 0 means DefaultMaxMatches.
func NewSession(maxMatches int) *Session {
	if maxMatches <= 0 {
		maxMatches = DefaultMaxMatches
	}
	return &Session{maxMatches: maxMatches}
}

// Reset returns the session to idle. Called on every document load.
func (s *Session) Reset() {
	s.hasSig = false
	s.lastSig = ""
	s.lastMatches = nil
	s.lastIdx = 0
}

// Search resolves rawQuery against entries. The second return is false
// when there is nothing to resolve: blank query, empty index, or an
// empty candidate list.
func (s *Session) Search(rawQuery string, entries []index.Entry) (Match, bool) {
	if len(entries) == 0 || strings.TrimSpace(rawQuery) == "" {
		return Match{}, false
	}

	sig := index.NormalizeWords(rawQuery)
	if !s.hasSig || sig != s.lastSig {
		s.lastMatches = Rank(NewQuery(rawQuery), entries, s.maxMatches)
		s.lastIdx = 0
		s.lastSig = sig
		s.hasSig = true
	} else if len(s.lastMatches) > 0 {
		// Same query again: cycle, wrapping around.
		s.lastIdx = (s.lastIdx + 1) % len(s.lastMatches)
	}

	if len(s.lastMatches) == 0 {
		return Match{}, false
	}
	e := s.lastMatches[s.lastIdx]
	return Match{
		PageNumber: e.PageNumber,
		Entry:      e,
		MatchIndex: s.lastIdx,
		MatchCount: len(s.lastMatches),
	}, true
}
