package model

import (
	"strconv"
	"time"
)

const (
	PulseMinScore = 1
	PulseMaxScore = 5
)

var pulseLabels = map[int]string{
	1: "1 – Worried",
	2: "2 – Uneasy",
	3: "3 – Stable",
	4: "4 – Good",
	5: "5 – Energised",
}

type Pulse struct {
	Record
	Score     int       `db:"score" json:"score"`
	Notes     string    `db:"notes" json:"notes"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// PulseLabel returns the display label for a score, falling back to the bare number.
func PulseLabel(score int) string {
	label, ok := pulseLabels[score]
	if ok {
		return label
	}
	return strconv.Itoa(score)
}
