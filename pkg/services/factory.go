package services

import (
	"fmt"
	"time"

	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/dubbing"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/models"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/transcription"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/utils"
	"github.com/ccp-p/broadcast-ai-cli/media-services/pkg/vision"
)

// Provider 聚合三类AI能力的后端实现
// 每个能力都有真实后端和Mock后端，按配置选择，实例本身无共享可变状态
type Provider struct {
	Transcription transcription.Service
	Dubbing       dubbing.Service
	Vision        vision.Service
}

// NewProvider 根据配置创建服务提供者
// 演示模式下全部使用Mock后端；否则使用远程API后端并校验密钥
func NewProvider(config *models.Config) (*Provider, error) {
	if config.DemoMode {
		utils.Info("演示模式：使用Mock后端")
		return &Provider{
			Transcription: transcription.NewMockTranscriptionService(),
			Dubbing:       dubbing.NewMockDubbingService(),
			Vision:        vision.NewMockVisionService(),
		}, nil
	}

	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("缺少OpenAI API密钥，无法创建远程服务")
	}

	provider := &Provider{
		Transcription: transcription.NewWhisperService(
			config.OpenAIKey,
			config.WhisperModel,
			time.Duration(config.TranscribeTimeout)*time.Second,
		),
		Vision: vision.NewGPT4VisionService(
			config.OpenAIKey,
			config.VisionModel,
			time.Duration(config.VisionTimeout)*time.Second,
		),
	}

	// 配音服务密钥可选：缺失时退回Mock，不影响其他能力
	if config.ElevenLabsKey != "" {
		provider.Dubbing = dubbing.NewElevenLabsService(
			config.ElevenLabsKey,
			config.DefaultVoiceID,
			time.Duration(config.DubbingTimeout)*time.Second,
		)
	} else {
		utils.Warn("缺少ElevenLabs API密钥，配音服务使用Mock后端")
		provider.Dubbing = dubbing.NewMockDubbingService()
	}

	utils.Info("已创建远程服务后端 (whisper=%s, vision=%s)", config.WhisperModel, config.VisionModel)
	return provider, nil
}
