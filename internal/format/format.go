// Package format renders server timestamps (epoch millis) for tables.
package format

import "time"

func Date(millis int64) string {
	return time.UnixMilli(millis).Format("01/02/2006")
}

func Time(millis int64) string {
	return time.UnixMilli(millis).Format("15:04:05")
}

// DateTime is the "Create Time" column rendering: date and clock.
func DateTime(millis int64) string {
	return Date(millis) + " " + Time(millis)
}
