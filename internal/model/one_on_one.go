package model

const (
	OneOnOneStatusPlanned = "planned"
	OneOnOneStatusDone    = "done"
)

type OneOnOne struct {
	Record
	Name   string `db:"name" json:"name"`
	Date   string `db:"date" json:"date"` // YYYY-MM-DD
	Agenda string `db:"agenda" json:"agenda"`
	Status string `db:"status" json:"status"`
}

func (o *OneOnOne) Done() bool {
	return o.Status == OneOnOneStatusDone
}
