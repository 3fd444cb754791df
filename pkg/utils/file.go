package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FileExists 判断文件是否存在且不是目录
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir 确保目录存在，不存在则创建
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}
	return nil
}

// DubbedOutputPath 根据源文件路径和目标语言推导配音输出路径
// 例如 /data/news.mp3 + "es" -> /data/news_es.mp3
func DubbedOutputPath(srcPath, targetLang string) string {
	dir := filepath.Dir(srcPath)
	ext := filepath.Ext(srcPath)
	stem := strings.TrimSuffix(filepath.Base(srcPath), ext)
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, targetLang, ext))
}

// DownloadToTemp 下载URL内容到临时文件，返回临时文件路径
// 调用方负责删除临时文件
func DownloadToTemp(ctx context.Context, url string, suffix string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("创建下载请求失败: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("下载媒体文件失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("下载媒体文件失败: HTTP %d", resp.StatusCode)
	}

	tmpFile, err := os.CreateTemp("", "media-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("创建临时文件失败: %w", err)
	}

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("写入临时文件失败: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("关闭临时文件失败: %w", err)
	}

	return tmpFile.Name(), nil
}
