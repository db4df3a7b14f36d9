package schedule

import (
	"fmt"
	"time"

	"pagecast/internal/models"
)

const layout = "2006-01-02 15:04"

// ToUTCTimeOfDay interprets date (YYYY-MM-DD) plus clock (HH:MM) as a wall
// clock moment in zone and returns the UTC time-of-day as HH:MM:SS.
//
// Only the time is converted. The hosting service receives the original
// local date string alongside this UTC time; that split is part of its
// contract and must not be "fixed" here.
func ToUTCTimeOfDay(date, clock, zone string) (string, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", models.NewError(models.KindTimeParse, "unknown timezone %q: %v", zone, err)
	}

	local, err := time.ParseInLocation(layout, fmt.Sprintf("%s %s", date, clock), loc)
	if err != nil {
		return "", models.NewError(models.KindTimeParse, "invalid publish date/time %q %q: %v", date, clock, err)
	}

	return local.UTC().Format("15:04:05"), nil
}
