package model

// User 用户模型
type User struct {
	Base
	Username string `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	Email    string `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Password string `gorm:"type:varchar(100);not null" json:"-"`
	Bio      string `gorm:"type:text" json:"bio"`
	Image    string `gorm:"type:varchar(255)" json:"image"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
