package models

// Voice 表示一个可用的配音音色
type Voice struct {
	ID          string            `json:"voice_id"`              // 音色ID
	Name        string            `json:"name"`                  // 音色名称
	Language    string            `json:"language"`              // 语言代码
	Description string            `json:"description,omitempty"` // 音色描述
	PreviewURL  string            `json:"preview_url,omitempty"` // 试听地址
	Labels      map[string]string `json:"labels,omitempty"`      // 服务商标签
}

// TTSResult 表示一次文本转语音的结果
type TTSResult struct {
	AudioData []byte                 `json:"-"`        // 音频二进制数据
	Format    string                 `json:"format"`   // 音频格式（如 mp3）
	Duration  float64                `json:"duration"` // 估算时长（秒）
	Metadata  map[string]interface{} `json:"metadata"` // 附加元数据
}

// DubbingResult 表示一次整段配音的结果
type DubbingResult struct {
	AudioPath string                 `json:"audio_path"` // 配音后音频文件路径
	Language  string                 `json:"language"`   // 目标语言
	VoiceID   string                 `json:"voice_id"`   // 使用的音色
	Duration  float64                `json:"duration"`   // 音频时长（秒）
	Metadata  map[string]interface{} `json:"metadata"`   // 附加元数据
}
