package dubbing

import (
	"context"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
)

// TTSOptions 文本转语音的可选参数
type TTSOptions struct {
	ModelID         string  // TTS模型ID
	Stability       float64 // 音色稳定度（0-1）
	SimilarityBoost float64 // 音色相似度（0-1）
}

// DefaultTTSOptions 返回默认TTS参数
func DefaultTTSOptions() *TTSOptions {
	return &TTSOptions{
		ModelID:         "eleven_multilingual_v2",
		Stability:       0.5,
		SimilarityBoost: 0.75,
	}
}

// Service 定义了配音服务的接口，真实实现与Mock实现可互换
type Service interface {
	// GetVoices 获取可用音色列表，language非空时按语言过滤
	GetVoices(ctx context.Context, language string) ([]models.Voice, error)

	// TextToSpeech 文本转语音，voiceID为空时使用默认音色，opts为nil时使用默认参数
	TextToSpeech(ctx context.Context, text string, voiceID string, opts *TTSOptions) (*models.TTSResult, error)

	// DubAudio 将整段音频配音为目标语言，输出写入源文件旁的同级路径
	DubAudio(ctx context.Context, audioPath string, targetLanguage string, voiceID string) (*models.DubbingResult, error)
}
