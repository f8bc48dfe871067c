package logger

import "time"

// Semicolons keep timestamps usable in file names on every platform. The hour
// is 24-hour even though an AM/PM marker follows.
const (
	dateTimeLayout = "2006-01-02 15;04;05 PM"
	timeOnlyLayout = "15;04;05 PM"
)

func dateTimeString(t time.Time) string {
	return t.Format(dateTimeLayout)
}

func timeString(t time.Time) string {
	return t.Format(timeOnlyLayout)
}
