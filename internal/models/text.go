package models

// TextModel is one entry of the site copy dictionary. The primary key is the
// symbolic slot name (e.g. "hero_title"), not a generated id.
type TextModel struct {
	ID    string `json:"id"    gorm:"primaryKey;size:191"`
	Label string `json:"label"`
	Value string `json:"value" gorm:"type:text"`
}

func (TextModel) TableName() string { return "texts" }
