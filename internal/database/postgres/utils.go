package postgres

import "time"

// nowISO returns the current UTC time formatted the way profile
// documents store timestamps.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
