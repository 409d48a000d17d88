package models

import "time"

// Profile is a singleton: at most one row, updated in place.
type Profile struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FullName string `gorm:"column:full_name;type:varchar(100);not null" json:"fullName"`
	Position string `gorm:"column:position;type:varchar(100);not null" json:"position"`
	Email    string `gorm:"column:email;type:varchar(100);not null" json:"email"`
	Phone    string `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Location string `gorm:"column:location;type:varchar(100)" json:"location"`
	Bio      string `gorm:"column:bio;type:varchar(1000)" json:"bio"`
	Age      *int   `gorm:"column:age" json:"age"`

	LinkedinURL  string `gorm:"column:linkedin_url;type:varchar(255)" json:"linkedinUrl"`
	GithubURL    string `gorm:"column:github_url;type:varchar(255)" json:"githubUrl"`
	TwitterURL   string `gorm:"column:twitter_url;type:varchar(255)" json:"twitterUrl"`
	InstagramURL string `gorm:"column:instagram_url;type:varchar(255)" json:"instagramUrl"`
	YoutubeURL   string `gorm:"column:youtube_url;type:varchar(255)" json:"youtubeUrl"`

	Image string `gorm:"column:image;type:varchar(255)" json:"image"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Profile) TableName() string { return "profile" }
