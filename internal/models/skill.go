package models

import "time"

type Skill struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Category    string `gorm:"column:category;type:varchar(100);not null" json:"category"`
	Proficiency int    `gorm:"column:proficiency;not null" json:"proficiency"` // percentage, 0..100
	Description string `gorm:"column:description;type:varchar(500)" json:"description"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Skill) TableName() string { return "skills" }
