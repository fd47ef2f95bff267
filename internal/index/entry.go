package index

import "fmt"

// Entry is one indexed occurrence of a named record at a specific
// page. NumberKey and TokensKey are derived from NameRaw alone.
type Entry struct {
	PageNumber int    `json:"page_number"`
	NameRaw    string `json:"name_raw"`
	NumberKey  string `json:"number_key,omitempty"`
	TokensKey  string `json:"tokens_key"`
}

// ListingEvent is emitted once per created entry to populate the
// external selectable-list widget.
type ListingEvent struct {
	PageNumber int    `json:"page_number"`
	Label      string `json:"label"`
	Value      int    `json:"value"`
}

func newListingEvent(e Entry) ListingEvent {
	return ListingEvent{
		PageNumber: e.PageNumber,
		Label:      fmt.Sprintf("%s (page %d)", e.NameRaw, e.PageNumber),
		Value:      e.PageNumber,
	}
}
