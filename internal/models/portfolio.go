package models

// PortfolioProjectModel is a case study shown on the portfolio page.
type PortfolioProjectModel struct {
	Base
	Title       string `json:"title"       gorm:"not null"`
	Category    string `json:"category"`
	Metric      string `json:"metric"`
	Description string `json:"description" gorm:"type:text"`
	Slug        string `json:"slug"        gorm:"uniqueIndex;not null"`
	Year        string `json:"year"        gorm:"index"`
}

func (PortfolioProjectModel) TableName() string { return "portfolio_projects" }
