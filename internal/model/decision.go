package model

type Decision struct {
	Record
	Topic   string `db:"topic" json:"topic"`
	Context string `db:"context" json:"context"`
	Outcome string `db:"outcome" json:"outcome"`
}
