package dto

// ProfileView 用户公开信息。只能由允许公开的字段构造，
// 用户模型新增的字段不会自动出现在这里。
type ProfileView struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"` // 关注关系暂不维护，恒为 false
}

// NewProfileView 创建公开信息投影
func NewProfileView(username, bio, image string) ProfileView {
	return ProfileView{
		Username: username,
		Bio:      bio,
		Image:    image,
	}
}
