package entity

import "time"

// ClockMinutes parses a wall-clock string into minutes since midnight.
// Accepts "15:04" as written by the API layer and "15:04:05" as Postgres
// returns time columns.
func ClockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return 0, err
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}
