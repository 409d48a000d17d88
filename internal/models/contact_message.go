package models

import "time"

type ContactMessage struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"column:first_name;type:varchar(100);not null" json:"firstName"`
	LastName  string `gorm:"column:last_name;type:varchar(100);not null" json:"lastName"`
	Email     string `gorm:"column:email;type:varchar(100);not null" json:"email"`
	Subject   string `gorm:"column:subject;type:varchar(200);not null" json:"subject"`
	Message   string `gorm:"column:message;type:varchar(2000);not null" json:"message"`
	IsRead    bool   `gorm:"column:is_read;default:false" json:"isRead"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
