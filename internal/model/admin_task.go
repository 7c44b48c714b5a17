package model

type AdminTask struct {
	Record
	Task      string `db:"task" json:"task"`
	Due       string `db:"due" json:"due"` // YYYY-MM-DD or empty
	Completed bool   `db:"completed" json:"completed"`
}
