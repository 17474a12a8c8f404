package models

// ValuePropModel is a short value statement on the about page.
// OrderIndex drives display order; it carries no uniqueness guarantee.
type ValuePropModel struct {
	Base
	Title       string `json:"title"       gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"index;default:0"`
}

func (ValuePropModel) TableName() string { return "value_props" }
