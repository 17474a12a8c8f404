package models

// BookingRequestModel is a consultation booking submitted from the public site.
type BookingRequestModel struct {
	Base
	ProjectType string `json:"project_type" gorm:"not null"`
	Budget      string `json:"budget"       gorm:"not null"`
	Date        string `json:"date"         gorm:"not null"`
	Time        string `json:"time"         gorm:"not null"`
	Name        string `json:"name"         gorm:"not null"`
	Email       string `json:"email"        gorm:"not null"`
	Company     string `json:"company"`
	Details     string `json:"details"      gorm:"type:text"`
}

func (BookingRequestModel) TableName() string { return "booking_requests" }
