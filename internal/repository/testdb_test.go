package repository

import (
	"fmt"
	"testing"

	"vidshare-go/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存 SQLite 库，单连接以便事务与查询落在同一个库上
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, channel string) *model.User {
	t.Helper()
	u := &model.User{
		Username:    username,
		Email:       username + "@test.local",
		Password:    "hash",
		ChannelName: channel,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedVideo(t *testing.T, db *gorm.DB, ownerID int64, title string) *model.Video {
	t.Helper()
	v := &model.Video{
		OwnerID:     ownerID,
		Title:       title,
		Description: "desc",
		VideoURL:    fmt.Sprintf("http://media/%s.mp4", title),
		Duration:    10,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
