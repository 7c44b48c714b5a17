package model

type FavoritePrompt struct {
	Record
	Text string `db:"text" json:"text"`
}
