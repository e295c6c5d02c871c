package models

// Tag labels posts. Posts and tags are many-to-many through post_tags.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
	Name string `gorm:"not null" json:"name"`
}
