package model

import (
	"time"
)

// DateKeyLayout is the fixed-width calendar date used to bucket records by day.
const DateKeyLayout = "2006-01-02"

// Record carries the metadata every stored record shares. IDs are UUIDv7
// strings assigned by the repository, so they sort in creation order.
type Record struct {
	ID        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (r *Record) Meta() *Record {
	return r
}

// DateKey truncates t to its calendar date in loc.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateKeyLayout, key, loc)
}
