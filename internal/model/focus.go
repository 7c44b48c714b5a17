package model

// FocusMarker is a short statement of the day's intent. Several markers may
// share a date key; the latest one is the day's current focus.
type FocusMarker struct {
	Record
	Text    string `db:"text" json:"text"`
	DateKey string `db:"date_key" json:"date_key"`
}
