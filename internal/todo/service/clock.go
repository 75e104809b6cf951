package service

import "time"

// now is the timestamp source for created_at/updated_at. Millisecond
// precision keeps values identical across drivers and JSON round trips.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
