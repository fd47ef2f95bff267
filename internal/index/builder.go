package index

import (
	"regexp"
	"strings"
)

// DefaultMarker precedes each named record in the statement template.
const DefaultMarker = "Name:"

// A TruncateRule cuts template noise off the text following a record
// marker. Rules run in order; each receives the output of the previous
// one. New document templates add rules here, not in the scan loop.
type TruncateRule func(s string) string

// TruncateAtLiteral cuts s immediately before the first occurrence of
// the given substring.
func TruncateAtLiteral(literal string) TruncateRule {
	return func(s string) string {
		if i := strings.Index(s, literal); i >= 0 {
			return s[:i]
		}
		return s
	}
}

var monthYear = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+[0-9]{4}\b`)

// TruncateAtMonthYear cuts s immediately before a month name followed
// by a 4-digit year, the statement period line of the template.
// Matching is case-insensitive.
func TruncateAtMonthYear() TruncateRule {
	return func(s string) string {
		if loc := monthYear.FindStringIndex(s); loc != nil {
			return s[:loc[0]]
		}
		return s
	}
}

// DefaultRules strips the headers of the gas volume statement
// template.
func DefaultRules() []TruncateRule {
	return []TruncateRule{
		TruncateAtLiteral("GAS VOLUME STATEMENT"),
		TruncateAtMonthYear(),
	}
}

// Builder scans per-page text for named records and produces the
// ordered entry index.
type Builder struct {
	Marker string
	Rules  []TruncateRule
}

// NewBuilder returns a builder for the default statement template.
func NewBuilder() *Builder {
	return &Builder{Marker: DefaultMarker, Rules: DefaultRules()}
}

// Build scans pagesText (one raw text block per page, ordered, page
// numbers starting at 1) and returns the entry index plus one listing
// event per created entry. Entries are unique by (page, name) and
// appear in page order, then first-occurrence order within a page.
func (b *Builder) Build(pagesText []string) ([]Entry, []ListingEvent) {
	var entries []Entry
	var events []ListingEvent
	for i, text := range pagesText {
		entries, events = b.scanPage(i+1, text, entries, events)
	}
	return entries, events
}

func (b *Builder) scanPage(pageNumber int, text string, entries []Entry, events []ListingEvent) ([]Entry, []ListingEvent) {
	seen := make(map[string]bool)
	rest := text
	for {
		i := strings.Index(rest, b.Marker)
		if i < 0 {
			break
		}
		// Advance past the marker so multiple records per page are
		// all visited, non-overlapping.
		rest = rest[i+len(b.Marker):]

		name := rest
		for _, rule := range b.Rules {
			name = rule(name)
		}
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		e := Entry{
			PageNumber: pageNumber,
			NameRaw:    name,
			NumberKey:  NumberKey(name),
			TokensKey:  TokensKey(name),
		}
		entries = append(entries, e)
		events = append(events, newListingEvent(e))
	}
	return entries, events
}
