package models

import "time"

type Certification struct {
	ID            uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Issuer        string `gorm:"column:issuer;type:varchar(100);not null" json:"issuer"`
	Year          string `gorm:"column:year;type:varchar(10);not null" json:"year"`
	CredentialURL string `gorm:"column:credential_url;type:varchar(255)" json:"credentialUrl"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Certification) TableName() string { return "certifications" }
