package models

// ContactMessageModel is a message submitted through the contact form.
type ContactMessageModel struct {
	Base
	Name    string `json:"name"    gorm:"not null"`
	Email   string `json:"email"   gorm:"not null"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"type:text"`
}

func (ContactMessageModel) TableName() string { return "contact_messages" }
