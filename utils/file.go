package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"clinic-portal/config"

	"github.com/gin-gonic/gin"
)

var allowedRecordExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// UploadFile writes the multipart file into the upload dir and returns its
// local path plus the normalized extension (without the dot).
func UploadFile(c *gin.Context, fileHeader *multipart.FileHeader, subDir string) (string, string, error) {
	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		return "", "", errors.New("file size exceeds maximum allowed size")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedRecordExtensions[ext] {
		return "", "", errors.New("invalid file type. Only pdf, jpg, jpeg and png are allowed")
	}

	uploadPath := filepath.Join(config.AppConfig.UploadDir, subDir)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", "", err
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	filePath := filepath.Join(uploadPath, filename)

	if err := c.SaveUploadedFile(fileHeader, filePath); err != nil {
		return "", "", err
	}

	return filePath, strings.TrimPrefix(ext, "."), nil
}

func DeleteFile(filePath string) error {
	if _, err := os.Stat(filePath); err == nil {
		return os.Remove(filePath)
	}
	return nil
}
