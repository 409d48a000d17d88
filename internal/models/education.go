package models

import "time"

type Education struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Degree      string `gorm:"column:degree;type:varchar(100);not null" json:"degree"`
	Institution string `gorm:"column:institution;type:varchar(100);not null" json:"institution"`
	Year        string `gorm:"column:year;type:varchar(20);not null" json:"year"`
	Description string `gorm:"column:description;type:varchar(1000)" json:"description"`
	GPA         string `gorm:"column:gpa;type:varchar(10)" json:"gpa"`
	Image       string `gorm:"column:image;type:varchar(255)" json:"image"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Education) TableName() string { return "education" }
