package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Upload 待上传的文件
type Upload struct {
	Reader      io.Reader
	Filename    string
	Size        int64
	ContentType string
}

// objectKey 生成对象名：<folder>/<kind>/<uuid><ext>
func objectKey(folder, kind, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join(folder, kind, uuid.NewString()+ext)
}

// saveUpload 上传文件并返回公开访问 URL
func saveUpload(ctx context.Context, store ObjectStore, folder, kind string, up *Upload) (string, error) {
	if store == nil {
		return "", fmt.Errorf("object store is not configured")
	}
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	url, err := store.Save(ctx, objectKey(folder, kind, up.Filename), up.Reader, up.Size, contentType)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", kind, err)
	}
	return url, nil
}
