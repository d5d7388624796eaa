package web

import (
	"testing"

	"railsearch/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrips() []schedule.TripResult {
	ndls := schedule.StationRef{StationCode: "NDLS", StationName: "New Delhi"}
	bct := schedule.StationRef{StationCode: "BCT", StationName: "Mumbai Central"}
	return []schedule.TripResult{
		{
			Source:        ndls,
			Destination:   bct,
			Train:         schedule.TrainRef{TrainNumber: "12951", TrainName: "Mumbai Rajdhani"},
			DepartureTime: "16:25",
			ArrivalTime:   "08:15",
		},
		{
			Source:        ndls,
			Destination:   bct,
			Train:         schedule.TrainRef{TrainNumber: "12953", TrainName: "August Kranti Rajdhani"},
			DepartureTime: "17:40",
			ArrivalTime:   "09:45",
		},
	}
}

func TestRouteSummary(t *testing.T) {
	assert.Equal(t, "New Delhi (NDLS) → Mumbai Central (BCT)", RouteSummary(sampleTrips()))
	assert.Equal(t, "", RouteSummary(nil))
}

func TestBuildTripCardsPreservesOrder(t *testing.T) {
	cards := BuildTripCards(sampleTrips())
	require.Len(t, cards, 2)

	assert.Equal(t, "12951", cards[0].TrainNumber)
	assert.Equal(t, "12953", cards[1].TrainNumber)

	assert.Equal(t, "4:25 PM", cards[0].Departs)
	assert.Equal(t, "8:15 AM", cards[0].Arrives)
	assert.Equal(t, "15h 50m", cards[0].Duration)

	assert.Equal(t, "5:40 PM", cards[1].Departs)
	assert.Equal(t, "9:45 AM", cards[1].Arrives)
	assert.Equal(t, "16h 5m", cards[1].Duration)
}
