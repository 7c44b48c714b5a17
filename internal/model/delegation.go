package model

const (
	DelegationStatusActive = "active"
	DelegationStatusDone   = "done"
)

type Delegation struct {
	Record
	Name    string `db:"name" json:"name"`
	Task    string `db:"task" json:"task"`
	Support string `db:"support" json:"support"`
	Status  string `db:"status" json:"status"`
}

func (d *Delegation) Done() bool {
	return d.Status == DelegationStatusDone
}
