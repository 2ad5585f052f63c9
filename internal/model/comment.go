package model

// Comment 评论模型
type Comment struct {
	Base
	Body      string `gorm:"type:text;not null" json:"body"`
	ArticleID uint   `gorm:"not null;index" json:"article_id"`
	AuthorID  uint   `gorm:"not null;index" json:"author_id"`

	// 关联
	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}
