package models

import (
	"time"

	"github.com/lib/pq"
)

type Experience struct {
	ID        uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string  `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Company   string  `gorm:"column:company;type:varchar(100);not null" json:"company"`
	StartDate string  `gorm:"column:start_date;type:varchar(20);not null" json:"startDate"`
	EndDate   *string `gorm:"column:end_date;type:varchar(20)" json:"endDate"` // nil = current position

	Description  string `gorm:"column:description;type:varchar(1000)" json:"description"`
	Technologies string `gorm:"column:technologies;type:varchar(1000)" json:"technologies"` // comma-joined

	// ordered gallery, text[]
	Images pq.StringArray `gorm:"column:images;type:text[]" json:"images"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Experience) TableName() string { return "experiences" }
