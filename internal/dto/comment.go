package dto

import "time"

// CommentCreateRequest 创建评论请求
type CommentCreateRequest struct {
	Comment struct {
		Body string `json:"body" binding:"required,notblank"`
	} `json:"comment"`
}

// CommentListQuery 评论列表查询参数
type CommentListQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// CommentView 评论视图
type CommentView struct {
	ID        uint        `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Body      string      `json:"body"`
	Author    ProfileView `json:"author"`
}
