package model

// Article 文章模型
type Article struct {
	Base
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Body        string `gorm:"type:text" json:"body"`
	AuthorID    uint   `gorm:"not null;index" json:"author_id"` // 创建后不可变

	// 关联
	Author User  `gorm:"foreignKey:AuthorID" json:"-"`
	Tags   []Tag `gorm:"many2many:article_tags;" json:"-"`
}

// TableName 指定表名
func (Article) TableName() string {
	return "articles"
}

// TagNames 返回文章关联的标签名称
func (a *Article) TagNames() []string {
	names := make([]string, 0, len(a.Tags))
	for _, tag := range a.Tags {
		names = append(names, tag.Name)
	}
	return names
}
