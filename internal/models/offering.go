package models

// ServiceModel is a consulting service offering.
type ServiceModel struct {
	Base
	Title       string      `json:"title"       gorm:"not null"`
	Description string      `json:"description" gorm:"type:text"`
	Features    StringArray `json:"features"    gorm:"type:longtext"`
	Price       string      `json:"price"`
	Icon        string      `json:"icon"        gorm:"default:'Rocket'"`
}

func (ServiceModel) TableName() string { return "services" }
