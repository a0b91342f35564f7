package models

type Tag struct {
	Slug  string `gorm:"primaryKey;size:50" json:"slug"`
	Title string `gorm:"uniqueIndex;size:50;not null" json:"title"`
}
