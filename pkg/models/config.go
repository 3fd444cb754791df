package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Config 表示应用程序的配置
type Config struct {
	DemoMode          bool    `json:"demo_mode"`          // 演示模式：使用Mock服务，不发起远程调用
	OpenAIKey         string  `json:"openai_api_key"`     // OpenAI API密钥
	ElevenLabsKey     string  `json:"elevenlabs_api_key"` // ElevenLabs API密钥
	WhisperModel      string  `json:"whisper_model"`      // Whisper模型ID
	VisionModel       string  `json:"vision_model"`       // 视觉分析模型ID
	DefaultVoiceID    string  `json:"default_voice_id"`   // 默认配音音色
	TranscribeTimeout int     `json:"transcribe_timeout"` // 转写请求超时（秒）
	DubbingTimeout    int     `json:"dubbing_timeout"`    // 配音请求超时（秒）
	VisionTimeout     int     `json:"vision_timeout"`     // 视觉请求超时（秒）
	MediaFolder       string  `json:"media_folder"`       // 媒体文件所在文件夹
	OutputFolder      string  `json:"output_folder"`      // 输出结果文件夹
	ExportSRT         bool    `json:"export_srt"`         // 是否导出SRT字幕文件
	ExportVTT         bool    `json:"export_vtt"`         // 是否导出VTT字幕文件
	ExportJSON        bool    `json:"export_json"`        // 是否导出JSON结果文件
	WatchMode         bool    `json:"watch_mode"`         // 是否启用文件夹监听模式
	FrameInterval     float64 `json:"frame_interval"`     // 视频帧分析间隔（秒）
	LogLevel          string  `json:"log_level"`          // 日志级别
	LogFile           string  `json:"log_file"`           // 日志文件
}

// ConfigValidationError 表示配置验证错误
type ConfigValidationError struct {
	Field   string
	Message string
}

func (e ConfigValidationError) Error() string {
	msg := fmt.Sprintf("配置验证错误: %s - %s", e.Field, e.Message)
	logrus.Error(msg)
	return msg
}

// NewDefaultConfig 创建默认配置
func NewDefaultConfig() *Config {
	return &Config{
		DemoMode:          true,
		WhisperModel:      "whisper-1",
		VisionModel:       "gpt-4-vision-preview",
		DefaultVoiceID:    "21m00Tcm4TlvDq8ikWAM",
		TranscribeTimeout: 300,
		DubbingTimeout:    300,
		VisionTimeout:     60,
		MediaFolder:       "./media",
		OutputFolder:      "./output",
		ExportSRT:         true,
		ExportVTT:         false,
		ExportJSON:        false,
		WatchMode:         false,
		FrameInterval:     1.0,
		LogLevel:          "INFO",
		LogFile:           "",
	}
}

// LoadFromFile 从JSON文件加载配置
func (c *Config) LoadFromFile(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("读取配置文件失败: %w", err)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("解析配置文件失败: %w", err)
	}

	// API密钥支持从环境变量读取，避免写入配置文件
	c.applyEnvOverrides()

	return c.Validate()
}

// applyEnvOverrides 从环境变量补齐API密钥
func (c *Config) applyEnvOverrides() {
	if c.OpenAIKey == "" {
		c.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.ElevenLabsKey == "" {
		c.ElevenLabsKey = os.Getenv("ELEVENLABS_API_KEY")
	}
}

// Validate 验证配置有效性
func (c *Config) Validate() error {
	if c.TranscribeTimeout <= 0 {
		return ConfigValidationError{Field: "transcribe_timeout", Message: "必须大于0"}
	}
	if c.DubbingTimeout <= 0 {
		return ConfigValidationError{Field: "dubbing_timeout", Message: "必须大于0"}
	}
	if c.VisionTimeout <= 0 {
		return ConfigValidationError{Field: "vision_timeout", Message: "必须大于0"}
	}
	if c.FrameInterval <= 0 {
		return ConfigValidationError{Field: "frame_interval", Message: "必须大于0"}
	}
	if !c.DemoMode {
		if c.OpenAIKey == "" {
			return ConfigValidationError{Field: "openai_api_key", Message: "非演示模式下不能为空"}
		}
	}

	if err := ensureDirExists(c.OutputFolder); err != nil {
		return ConfigValidationError{Field: "output_folder", Message: err.Error()}
	}

	return nil
}

// PrintConfig 打印当前配置
func (c *Config) PrintConfig() {
	fmt.Println("\n当前配置:")
	bytes, _ := json.MarshalIndent(c, "", "  ")
	fmt.Println(string(bytes))
}

// 确保目录存在，如果不存在则创建
func ensureDirExists(path string) error {
	if path == "" {
		return nil // 空路径视为可选
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(filepath.Clean(path), 0755)
	}

	return nil
}
