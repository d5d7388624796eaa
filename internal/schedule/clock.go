package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// parseClock parses clock strings like "10:30" to minutes from midnight. Invalid => -1.
func parseClock(clockStr string) int {
	parts := strings.Split(clockStr, ":")
	if len(parts) != 2 {
		return -1
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return -1
	}
	return h*60 + m
}

// DurationString returns the journey length between two "HH:MM" clock times
// as "<H>h <M>m", with no zero-padding on the minutes. An arrival earlier
// than the departure is taken as crossing midnight. The source data carries
// no day count, so a trip longer than 24 hours reads the same as a shorter
// trip with the same clock difference.
func DurationString(departure, arrival string) string {
	dep := parseClock(departure)
	arr := parseClock(arrival)
	if dep < 0 || arr < 0 {
		return ""
	}
	if arr < dep {
		arr += 24 * 60
	}
	mins := arr - dep
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}

// Clock12 converts a 24-hour "HH:MM" clock time into a 12-hour display
// string "H:MM AM/PM". The minutes are passed through unchanged.
func Clock12(clockStr string) string {
	parts := strings.SplitN(clockStr, ":", 2)
	if len(parts) != 2 {
		return clockStr
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return clockStr
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%s %s", h12, parts[1], period)
}
