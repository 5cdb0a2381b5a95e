package model

import "time"

// DefaultProfilePicture 未上传头像时使用的占位图
const DefaultProfilePicture = "https://placehold.co/150x150/cccccc/000000?text=User"

// User 账号模型
type User struct {
	ID             int64        `gorm:"primaryKey;autoIncrement;comment:账号标识" json:"id"`
	Username       string       `gorm:"size:255;not null;uniqueIndex;comment:用户名" json:"username"`
	Email          string       `gorm:"size:255;not null;uniqueIndex;comment:邮箱（小写）" json:"email"`
	Password       string       `gorm:"size:255;not null;comment:密码哈希" json:"-"`
	ChannelName    string       `gorm:"size:255;index:idx_users_channel_name;comment:频道名" json:"channelName"`
	ProfilePicture string       `gorm:"size:500;comment:头像地址" json:"profilePicture"`
	WatchHistory   WatchHistory `gorm:"type:jsonb;serializer:json;comment:观看历史" json:"-"`
	JoinedDate     time.Time    `gorm:"autoCreateTime;comment:注册时间" json:"joinedDate"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`

	// 关联关系
	Videos []Video `gorm:"foreignKey:OwnerID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
