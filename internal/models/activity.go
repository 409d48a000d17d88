package models

import "time"

type Activity struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Description string `gorm:"column:description;type:varchar(1000);not null" json:"description"`
	Icon        string `gorm:"column:icon;type:varchar(50);not null" json:"icon"`
	Color       string `gorm:"column:color;type:varchar(20);not null" json:"color"`
	Image       string `gorm:"column:image;type:varchar(255)" json:"image"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Activity) TableName() string { return "activities" }
