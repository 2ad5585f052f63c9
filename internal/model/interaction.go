package model

import "time"

// Favorite 收藏关系，(user_id, article_id) 联合主键保证每对最多一行
type Favorite struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	ArticleID uint      `gorm:"primaryKey;autoIncrement:false;index" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (Favorite) TableName() string {
	return "favorites"
}
