package dto

// SignupRequest 注册请求，支持 multipart/form-data（可附带头像文件 profilePicture）或 JSON
type SignupRequest struct {
	Username    string `form:"username" json:"username" binding:"required,max=255"`
	Email       string `form:"email" json:"email" binding:"required,max=255"`
	Password    string `form:"password" json:"password" binding:"required,min=6,max=255"`
	ChannelName string `form:"channelName" json:"channelName" binding:"omitempty,max=255"`
}

// SigninRequest 登录请求
type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthData 注册/登录成功返回的账号与 Token
type AuthData struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}
