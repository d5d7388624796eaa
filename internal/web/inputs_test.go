package web

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSearchQuery(t *testing.T) {
	values := url.Values{}
	values.Set("sourceCode", " ndls1 ")
	values.Set("destinationCode", "bct")

	q := ParseSearchQuery(values)
	assert.Equal(t, "NDLS", q.Source)
	assert.Equal(t, "BCT", q.Destination)
}

func TestSearchQueryValidate(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		destination string
		wantBlocked bool
	}{
		{name: "valid", source: "NDLS", destination: "BCT", wantBlocked: false},
		{name: "both blank", source: "", destination: "", wantBlocked: true},
		{name: "source blank", source: "", destination: "BCT", wantBlocked: true},
		{name: "destination blank", source: "NDLS", destination: "", wantBlocked: true},
		{name: "identical codes", source: "NDLS", destination: "NDLS", wantBlocked: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := SearchQuery{Source: tc.source, Destination: tc.destination}
			msg := q.Validate()
			if tc.wantBlocked {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}
