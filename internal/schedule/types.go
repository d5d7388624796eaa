package schedule

import "strings"

// StationRef identifies a rail station as supplied by the schedule API.
type StationRef struct {
	StationCode string `json:"stationCode"`
	StationName string `json:"stationName"`
}

// TrainRef identifies a train as supplied by the schedule API.
type TrainRef struct {
	TrainNumber string `json:"trainNumber"`
	TrainName   string `json:"trainName"`
}

// TripResult is one scheduled run between two stations. Departure and
// arrival are 24-hour "HH:MM" clock times, zero-padded by the API.
type TripResult struct {
	Source        StationRef `json:"source"`
	Destination   StationRef `json:"destination"`
	Train         TrainRef   `json:"train"`
	DepartureTime string     `json:"departureTime"`
	ArrivalTime   string     `json:"arrivalTime"`
}

// NormalizeCode uppercases a station code and strips everything that is not
// a letter, mirroring the live input filter on the search form.
func NormalizeCode(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
