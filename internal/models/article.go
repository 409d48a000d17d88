package models

import "time"

type Article struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title    string `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Slug     string `gorm:"column:slug;type:varchar(200);not null;uniqueIndex" json:"slug"`
	Excerpt  string `gorm:"column:excerpt;type:varchar(1000);not null" json:"excerpt"`
	Content  string `gorm:"column:content;type:text;not null" json:"content"`
	Category string `gorm:"column:category;type:varchar(100);not null" json:"category"`
	ReadTime int    `gorm:"column:read_time;not null" json:"readTime"` // minutes

	ImageURL string `gorm:"column:image_url;type:varchar(255)" json:"imageUrl"`
	Image    string `gorm:"column:image;type:varchar(255)" json:"image"`
	URL      string `gorm:"column:url;type:varchar(255)" json:"url"` // optional external link

	Published bool `gorm:"column:published;default:false" json:"published"`
	Featured  bool `gorm:"column:featured;default:false" json:"featured"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Article) TableName() string { return "articles" }
