package models

// User backs the admin login. Password holds a bcrypt hash.
type User struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"column:username;type:varchar(100);not null;uniqueIndex" json:"username"`
	Password string `gorm:"column:password;type:varchar(255);not null" json:"-"`
}

func (User) TableName() string { return "users" }
