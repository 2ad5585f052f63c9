package model

// Tag 标签模型，多篇文章共享，解除关联时不删除
type Tag struct {
	Base
	Name string `gorm:"type:varchar(64);not null;uniqueIndex" json:"name"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

// ArticleTag 文章-标签关联模型
type ArticleTag struct {
	ArticleID uint `gorm:"primaryKey;autoIncrement:false" json:"article_id"`
	TagID     uint `gorm:"primaryKey;autoIncrement:false;index" json:"tag_id"`
}

// TableName 指定表名
func (ArticleTag) TableName() string {
	return "article_tags"
}
