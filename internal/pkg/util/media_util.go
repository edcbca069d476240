package util

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// SniffContentType 读取文件头部嗅探真实 MIME 类型，读完后重置偏移
func SniffContentType(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("读取文件头失败: %w", err)
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("重置文件偏移失败: %w", err)
	}

	return http.DetectContentType(buf[:n]), nil
}
