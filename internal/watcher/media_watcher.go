package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/utils"
)

// MediaHandler 处理新媒体文件的回调
type MediaHandler func(filePath string)

// MediaWatcher 监控媒体文件夹，发现新文件后经过去抖延迟交给处理回调
type MediaWatcher struct {
	watcher        *fsnotify.Watcher
	folderPath     string
	fileExtensions []string
	handler        MediaHandler
	debounceTime   time.Duration
	pendingFiles   map[string]*time.Timer
	mutex          sync.Mutex
	stopChan       chan struct{}
}

// NewMediaWatcher 创建新的媒体文件夹监控器
func NewMediaWatcher(folderPath string, extensions []string, handler MediaHandler, debounceTime time.Duration) (*MediaWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("创建文件监控器失败: %w", err)
	}

	return &MediaWatcher{
		watcher:        watcher,
		folderPath:     folderPath,
		fileExtensions: extensions,
		handler:        handler,
		debounceTime:   debounceTime,
		pendingFiles:   make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start 开始监控文件夹
func (m *MediaWatcher) Start() error {
	if err := os.MkdirAll(m.folderPath, 0755); err != nil {
		return fmt.Errorf("创建文件夹失败: %w", err)
	}

	if err := m.watcher.Add(m.folderPath); err != nil {
		return fmt.Errorf("添加监控文件夹失败: %w", err)
	}

	go m.watchLoop()

	utils.Info("开始监控媒体文件夹: %s", m.folderPath)
	return nil
}

// Stop 停止监控
func (m *MediaWatcher) Stop() {
	close(m.stopChan)
	m.watcher.Close()

	// 取消所有待处理的文件定时器
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for _, timer := range m.pendingFiles {
		timer.Stop()
	}

	utils.Info("停止监控媒体文件夹: %s", m.folderPath)
}

// watchLoop 监控循环
func (m *MediaWatcher) watchLoop() {
	for {
		select {
		case <-m.stopChan:
			return
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				m.scheduleFile(event.Name)
			}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			utils.Warn("文件监控错误: %v", err)
		}
	}
}

// scheduleFile 对文件做去抖处理：写入停止一段时间后才触发回调
func (m *MediaWatcher) scheduleFile(filePath string) {
	if !m.isMediaFile(filePath) {
		return
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if timer, exists := m.pendingFiles[filePath]; exists {
		timer.Stop()
	}

	m.pendingFiles[filePath] = time.AfterFunc(m.debounceTime, func() {
		m.mutex.Lock()
		delete(m.pendingFiles, filePath)
		m.mutex.Unlock()

		utils.Debug("检测到新媒体文件: %s", filePath)
		m.handler(filePath)
	})
}

// isMediaFile 判断是否是关注的媒体文件
func (m *MediaWatcher) isMediaFile(filePath string) bool {
	name := filepath.Base(filePath)
	if strings.HasPrefix(name, ".") {
		return false
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	for _, allowed := range m.fileExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
