package handler

import (
	"io"
	"strconv"

	"vidshare-go/internal/api/middleware"
	"vidshare-go/internal/api/response"
	"vidshare-go/internal/service"

	"github.com/gin-gonic/gin"
)

// parseIDParam 解析路径中的数值 ID，非法时直接写 400
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

// currentUserID 已经过 AuthRequired 的请求一定能取到账号 ID
func currentUserID(c *gin.Context) int64 {
	id, _ := middleware.GetCurrentUserID(c)
	return id
}

// formUpload 读取 multipart 文件字段，未上传或非 multipart 请求时返回 nil
// 调用方处理完后需调用返回的 closer
func formUpload(c *gin.Context, field string) (*service.Upload, func()) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}
	}
	return &service.Upload{
		Reader:      f,
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
	}, closeQuietly(f)
}

func closeQuietly(c io.Closer) func() {
	return func() { _ = c.Close() }
}

func invalidRequest(c *gin.Context, err error) {
	response.BadRequest(c, "Invalid request: "+err.Error())
}
