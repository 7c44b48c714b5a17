package model

type Priority struct {
	Record
	Title     string `db:"title" json:"title"`
	Impact    string `db:"impact" json:"impact"`
	Completed bool   `db:"completed" json:"completed"`
}
