package csvdata

import (
	"fmt"
	"strings"
	"time"
)

func errMissingField(field string) error {
	return fmt.Errorf("missing %s", field)
}

func errBadField(field string, err error) error {
	return fmt.Errorf("bad %s: %w", field, err)
}

// parseWeekday maps the calendar file's three-letter day codes.
func parseWeekday(s string) (time.Weekday, error) {
	switch strings.ToUpper(s) {
	case "MON":
		return time.Monday, nil
	case "TUE":
		return time.Tuesday, nil
	case "WED":
		return time.Wednesday, nil
	case "THU":
		return time.Thursday, nil
	case "FRI":
		return time.Friday, nil
	case "SAT":
		return time.Saturday, nil
	case "SUN":
		return time.Sunday, nil
	default:
		return time.Sunday, fmt.Errorf("invalid day of week: %q", s)
	}
}

func isYes(s string) bool {
	return strings.EqualFold(s, "Y")
}
