package services

import (
	"fmt"
	"time"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// addDaysStr shifts a DateLayout day by the given number of days.
func addDaysStr(date string, days int) (string, error) {
	day, err := time.Parse(roster.DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", roster.ErrInvalidDate, date)
	}
	return day.AddDate(0, 0, days).Format(roster.DateLayout), nil
}
