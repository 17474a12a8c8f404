package models

// Blog post publication states.
const (
	BlogStatusDraft     = "Draft"
	BlogStatusPublished = "Published"
)

// BlogModel is a blog post. Date is the author-facing publication date as a
// YYYY-MM-DD string, separate from the row timestamps.
type BlogModel struct {
	Base
	Title    string `json:"title"     gorm:"not null"`
	Excerpt  string `json:"excerpt"   gorm:"type:text"`
	Category string `json:"category"`
	Date     string `json:"date"      gorm:"index;not null"`
	ReadTime string `json:"read_time"`
	Slug     string `json:"slug"      gorm:"uniqueIndex;not null"`
	Status   string `json:"status"    gorm:"index;not null;default:'Draft'"`
}

func (BlogModel) TableName() string { return "blogs" }

// IsPublished reports whether the post is visible on the public site.
func (b BlogModel) IsPublished() bool { return b.Status == BlogStatusPublished }
