package web

import (
	"fmt"

	"railsearch/internal/schedule"
)

// RouteSummary derives the "source → destination" label from the first
// trip. Callers route empty sequences to the empty state before this runs.
func RouteSummary(trips []schedule.TripResult) string {
	if len(trips) == 0 {
		return ""
	}
	first := trips[0]
	return fmt.Sprintf("%s (%s) → %s (%s)",
		first.Source.StationName, first.Source.StationCode,
		first.Destination.StationName, first.Destination.StationCode)
}

// BuildTripCards maps trips to display cards, preserving the order the API
// returned them in.
func BuildTripCards(trips []schedule.TripResult) []TripCardVM {
	cards := make([]TripCardVM, 0, len(trips))
	for _, t := range trips {
		cards = append(cards, TripCardVM{
			TrainNumber: t.Train.TrainNumber,
			TrainName:   t.Train.TrainName,
			SourceName:  t.Source.StationName,
			SourceCode:  t.Source.StationCode,
			DestName:    t.Destination.StationName,
			DestCode:    t.Destination.StationCode,
			Departs:     schedule.Clock12(t.DepartureTime),
			Arrives:     schedule.Clock12(t.ArrivalTime),
			Duration:    schedule.DurationString(t.DepartureTime, t.ArrivalTime),
		})
	}
	return cards
}
