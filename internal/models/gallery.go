package models

// GalleryImageModel references an uploaded image. URL points at the object
// store; Filename preserves the original upload name for display.
type GalleryImageModel struct {
	Base
	URL      string `json:"url"      gorm:"not null"`
	Filename string `json:"filename"`
}

func (GalleryImageModel) TableName() string { return "images" }
