package utils

import (
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

func Today() datatypes.Date {
	return DateOf(time.Now())
}

func DateOf(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local))
}

func ParseDate(raw string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, raw, time.Local)
	if err != nil {
		return datatypes.Date{}, ValidationError("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return datatypes.Date(t), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// DaysBetween counts whole calendar days from one date to another. Same day
// is 0, the next day is 1.
func DaysBetween(from, to datatypes.Date) int {
	f := time.Time(from)
	t := time.Time(to)
	fd := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	td := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(td.Sub(fd).Hours() / 24)
}

func DateBefore(a, b datatypes.Date) bool {
	return DaysBetween(a, b) > 0
}
