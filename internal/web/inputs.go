package web

import (
	"net/url"

	"railsearch/internal/schedule"
)

// SearchQuery is the pair of station codes after normalization. The form
// filters input to uppercase letters as the user types; the server applies
// the same filter again so a hand-crafted URL cannot bypass it.
type SearchQuery struct {
	Source      string
	Destination string
}

func ParseSearchQuery(values url.Values) SearchQuery {
	return SearchQuery{
		Source:      schedule.NormalizeCode(values.Get("sourceCode")),
		Destination: schedule.NormalizeCode(values.Get("destinationCode")),
	}
}

// Validate returns the inline message blocking dispatch, or "" when the
// query may be sent upstream.
func (q SearchQuery) Validate() string {
	switch {
	case q.Source == "" && q.Destination == "":
		return "Enter a source and a destination station code."
	case q.Source == "":
		return "Enter a source station code."
	case q.Destination == "":
		return "Enter a destination station code."
	case q.Source == q.Destination:
		return "Source and destination stations must be different."
	}
	return ""
}
