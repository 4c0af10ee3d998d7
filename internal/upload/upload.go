// File: internal/upload/upload.go
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix 上傳檔案對外提供的靜態路徑前綴
const URLPrefix = "/uploads"

var (
	// ErrFormat 副檔名不在允許清單內
	ErrFormat = errors.New("unsupported image format")

	// ErrTooLarge 檔案超過大小上限
	ErrTooLarge = errors.New("file size exceeds limit")
)

// uuidNewString 測試可覆寫此變數
var uuidNewString = uuid.NewString

// Store 將上傳圖片寫入本機目錄，以 UUID 命名避免碰撞
// 建立後唯讀，可安全併發使用
type Store struct {
	dir     string
	maxSize int64
	allowed map[string]struct{}
}

// NewStore 建立上傳目錄並回傳 Store
// formats 為允許的副檔名（不含點），一律視為小寫
func NewStore(dir string, maxSize int64, formats []string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}
	allowed := make(map[string]struct{}, len(formats))
	for _, f := range formats {
		allowed[strings.ToLower(f)] = struct{}{}
	}
	return &Store{dir: dir, maxSize: maxSize, allowed: allowed}, nil
}

// Dir 回傳儲存目錄，供靜態路由掛載
func (s *Store) Dir() string { return s.dir }

// Save 驗證並寫入上傳檔案，回傳對外路徑 /uploads/<uuid><ext>
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := s.allowed[strings.TrimPrefix(ext, ".")]; !ok {
		return "", ErrFormat
	}
	if fh.Size > s.maxSize {
		return "", ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuidNewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer dst.Close()

	// LimitReader 防止與 header 大小不符的串流超量寫入
	if _, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1)); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return URLPrefix + "/" + name, nil
}

// Remove 刪除先前 Save 回傳路徑對應的檔案，檔案不存在視為成功
func (s *Store) Remove(servedPath string) error {
	name := filepath.Base(servedPath)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
