package timezone

import (
	"time"

	"github.com/BruksfildServices01/slot-scheduler/internal/domain/schedule"
)

const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to DefaultTimezone for empty or unknown zones.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string, now time.Time) time.Time {
	return now.In(Location(tz))
}

// Today is the shop's calendar date at instant now.
func Today(tz string, now time.Time) schedule.Date {
	return schedule.DateOf(NowIn(tz, now))
}
